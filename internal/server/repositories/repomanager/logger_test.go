package repomanager

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/vaultkeeper/internal/logging"
)

type captureLogger struct {
	mu   sync.Mutex
	msgs []string
}

func (c *captureLogger) add(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
}

func (c *captureLogger) contains(sub string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, m := range c.msgs {
		if strings.Contains(m, sub) {
			return true
		}
	}
	return false
}

func (c *captureLogger) Debug(_ context.Context, msg string, _ ...any) { c.add(msg) }
func (c *captureLogger) Info(_ context.Context, msg string, _ ...any)  { c.add(msg) }
func (c *captureLogger) Warn(_ context.Context, msg string, _ ...any)  { c.add(msg) }
func (c *captureLogger) Error(_ context.Context, msg string, _ ...any) { c.add(msg) }
func (c *captureLogger) With(...any) logging.Logger                    { return c }

func TestGooseLogger_Printf(t *testing.T) {
	c := &captureLogger{}
	g := gooseLogger{ctx: context.Background(), logger: c}

	g.Printf("OK   %s (%s)\n", "00001_init.sql", "1.2ms")

	assert.Equal(t, []string{"OK   00001_init.sql (1.2ms)"}, c.msgs)
}
