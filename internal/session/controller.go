// Package session holds the process-wide conversion state: the active mode,
// the live payload and the descriptor of the file it came from.
//
// Every mode switch clears the live state and invalidates operations that
// were started before it, so a slow read can never publish output from the
// direction the user just left.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/docconvert/internal/common"
	"github.com/dmitrijs2005/docconvert/internal/logging"
	"github.com/dmitrijs2005/docconvert/internal/models"
	"github.com/dmitrijs2005/docconvert/internal/pipeline"
)

// Ticket identifies an operation started under a particular mode generation.
type Ticket struct {
	ID         string
	Mode       models.ConversionMode
	generation uint64
}

// State is a point-in-time copy of the session.
type State struct {
	Mode       models.ConversionMode
	Payload    models.Base64Payload
	Descriptor *models.FileDescriptor
}

// Controller owns the session state. The zero value is not usable; call
// NewController.
type Controller struct {
	mu         sync.Mutex
	mode       models.ConversionMode
	payload    models.Base64Payload
	descriptor *models.FileDescriptor
	generation uint64
	logger     logging.Logger
}

// NewController returns a controller in encode mode with no live output.
func NewController(logger logging.Logger) *Controller {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Controller{mode: models.ModeEncode, logger: logger}
}

// Mode returns the active direction.
func (c *Controller) Mode() models.ConversionMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// SwitchTo makes mode active, clears the live payload and descriptor and
// invalidates every outstanding ticket. Switching to the current mode still
// clears.
func (c *Controller) SwitchTo(ctx context.Context, mode models.ConversionMode) {
	c.mu.Lock()
	prev := c.mode
	c.mode = mode
	c.payload = ""
	c.descriptor = nil
	c.generation++
	c.mu.Unlock()

	if prev != mode {
		c.logger.Info(ctx, "mode switched", "from", prev, "to", mode)
	} else {
		c.logger.Debug(ctx, "mode reset", "mode", mode)
	}
}

// Begin starts an operation under the current mode.
func (c *Controller) Begin() Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Ticket{ID: uuid.NewString(), Mode: c.mode, generation: c.generation}
}

// Current reports whether t was issued after the latest mode switch.
func (c *Controller) Current(t Ticket) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.currentLocked(t)
}

func (c *Controller) currentLocked(t Ticket) bool {
	return t.generation == c.generation && t.Mode == c.mode
}

// CommitEncoded publishes the result of an encode operation. Results from a
// stale ticket are dropped with common.ErrStaleResult; a descriptor that fails
// its own validation is refused.
func (c *Controller) CommitEncoded(ctx context.Context, t Ticket, p models.Base64Payload, d models.FileDescriptor) error {
	if err := d.Validate(); err != nil {
		return fmt.Errorf("invalid file descriptor: %w", err)
	}

	c.mu.Lock()
	if !c.currentLocked(t) || t.Mode != models.ModeEncode {
		c.mu.Unlock()
		c.logger.Warn(ctx, "discarding stale encode result", "op", t.ID)
		return common.ErrStaleResult
	}
	c.payload = p
	c.descriptor = &d
	c.mu.Unlock()

	c.logger.Debug(ctx, "encode result committed", "op", t.ID, "chars", p.Len())
	return nil
}

// CommitDecoded publishes validated base64 input for the decode direction.
// Text that fails validation is rejected and leaves the state untouched.
func (c *Controller) CommitDecoded(ctx context.Context, t Ticket, p models.Base64Payload) error {
	if err := pipeline.AcceptBase64(string(p)); err != nil {
		return err
	}

	c.mu.Lock()
	if !c.currentLocked(t) || t.Mode != models.ModeDecode {
		c.mu.Unlock()
		c.logger.Warn(ctx, "discarding stale decode result", "op", t.ID)
		return common.ErrStaleResult
	}
	c.payload = p
	c.descriptor = nil
	c.mu.Unlock()

	c.logger.Debug(ctx, "decode input committed", "op", t.ID, "chars", p.Len())
	return nil
}

// ReplacePayload swaps the live payload for an edited one while keeping the
// descriptor. It fails with common.ErrNoPayload when nothing is live.
func (c *Controller) ReplacePayload(ctx context.Context, p models.Base64Payload) error {
	c.mu.Lock()
	if c.payload == "" && c.descriptor == nil {
		c.mu.Unlock()
		return common.ErrNoPayload
	}
	c.payload = p
	c.mu.Unlock()

	c.logger.Debug(ctx, "payload replaced", "chars", p.Len())
	return nil
}

// Snapshot copies the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := State{Mode: c.mode, Payload: c.payload}
	if c.descriptor != nil {
		d := *c.descriptor
		s.Descriptor = &d
	}
	return s
}
