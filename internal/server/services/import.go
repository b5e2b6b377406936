// Package services contains the server's business logic. ImportService
// ingests client-encrypted vault bundles.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/vaultkeeper/internal/dbx"
	"github.com/dmitrijs2005/vaultkeeper/internal/logging"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/config"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/models"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/ciphers"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/folders"
	"github.com/dmitrijs2005/vaultkeeper/internal/server/repositories/repomanager"
)

// defaultArchiveTimeout bounds the archive upload that follows a
// successful import.
const defaultArchiveTimeout = 5 * time.Second

// BundleArchiver stores a copy of an accepted bundle and returns where.
type BundleArchiver interface {
	Archive(ctx context.Context, ownerID string, req *models.ImportRequest) (string, error)
}

type ImportService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	archiver    BundleArchiver
	logger      logging.Logger

	atomic         bool
	strict         bool
	chunkSize      int
	archiveTimeout time.Duration

	now   func() time.Time
	newID func() (string, error)
}

// NewImportService wires the pipeline. archiver may be nil, which turns
// archiving off.
func NewImportService(db *sql.DB, repomanager repomanager.RepositoryManager, config *config.Config,
	logger logging.Logger, archiver BundleArchiver) *ImportService {
	return &ImportService{
		db:          db,
		repomanager: repomanager,
		archiver:    archiver,
		logger:      logger.With("module", "import"),
		atomic:      config.AtomicImport,
		strict:      config.StrictRelationships,
		chunkSize:   config.ImportChunkSize,
		now:         time.Now,
		newID:       newCipherID,

		archiveTimeout: defaultArchiveTimeout,
	}
}

// Import persists req under ownerID.
//
// Every check runs before the first write: a cipher encrypted for someone
// else, an unserializable payload or (in strict mode) a dangling
// relationship rejects the bundle with nothing stored. Folders are then
// inserted, skipping ids that already exist, followed by the ciphers, each
// under a fresh id. Each batch commits as a whole; with atomic imports both
// batches share one transaction. All rows written by one call carry the
// same timestamp.
func (s *ImportService) Import(ctx context.Context, ownerID string, req *models.ImportRequest) error {
	if req == nil || req.Empty() {
		s.logger.Debug(ctx, "empty import bundle", "owner", ownerID)
		return nil
	}

	now := s.now().UTC().Truncate(time.Millisecond)

	folderRows := materializeFolders(ownerID, req.Folders, now)

	if err := resolveRelationships(req, s.strict); err != nil {
		s.logger.Warn(ctx, "import rejected", "owner", ownerID, "error", err)
		return err
	}

	cipherRows, err := materializeCiphers(ownerID, req.Ciphers, now, s.newID)
	if err != nil {
		s.logger.Warn(ctx, "import rejected", "owner", ownerID, "error", err)
		return err
	}

	dialect := s.repomanager.Dialect()

	// an empty batch gets no step, so no transaction is opened for it
	var steps []func(ctx context.Context, tx dbx.DBTX) error
	var foldersInserted, ciphersInserted int64
	if len(folderRows) > 0 {
		steps = append(steps, func(ctx context.Context, tx dbx.DBTX) error {
			var err error
			foldersInserted, err = persistBatch(ctx, folderRows, s.chunkRows(dialect, folders.Columns), s.repomanager.Folders(tx).InsertBatch)
			if err != nil {
				return fmt.Errorf("folders: %w", err)
			}
			return nil
		})
	}
	if len(cipherRows) > 0 {
		steps = append(steps, func(ctx context.Context, tx dbx.DBTX) error {
			var err error
			ciphersInserted, err = persistBatch(ctx, cipherRows, s.chunkRows(dialect, ciphers.Columns), s.repomanager.Ciphers(tx).InsertBatch)
			if err != nil {
				return fmt.Errorf("ciphers: %w", err)
			}
			return nil
		})
	}

	err = dbx.RunSteps(ctx, s.db, s.atomic, steps...)
	if err != nil {
		s.logger.Error(ctx, "import failed", "owner", ownerID, "error", err)
		return err
	}

	s.logger.Info(ctx, "import finished",
		"owner", ownerID,
		"folders", len(folderRows), "folders_inserted", foldersInserted,
		"ciphers", len(cipherRows), "ciphers_inserted", ciphersInserted,
	)

	s.archive(ctx, ownerID, req)
	return nil
}

// chunkRows caps the configured chunk size so one statement stays within
// the bind parameter limit of dialect for rows of cols columns.
func (s *ImportService) chunkRows(dialect dbx.Dialect, cols int) int {
	limit := dialect.MaxRows(cols)
	if s.chunkSize <= 0 || s.chunkSize > limit {
		return limit
	}
	return s.chunkSize
}

// archive is best-effort: the import already succeeded.
func (s *ImportService) archive(ctx context.Context, ownerID string, req *models.ImportRequest) {
	if s.archiver == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, s.archiveTimeout)
	defer cancel()

	key, err := s.archiver.Archive(ctx, ownerID, req)
	if err != nil {
		s.logger.Warn(ctx, "bundle archive failed", "owner", ownerID, "error", err)
		return
	}
	s.logger.Debug(ctx, "bundle archived", "owner", ownerID, "key", key)
}
