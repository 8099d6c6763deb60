package store

import (
	"time"

	"github.com/dmitrijs2005/nutrio/internal/client/avatars"
	"github.com/dmitrijs2005/nutrio/internal/logging"
)

type options struct {
	now     func() time.Time
	log     logging.Logger
	avatars avatars.Storage
}

type Option func(*options)

// WithClock sets the time source; today's date is taken in its location.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithAvatars enables avatar upload and s3:// reference resolution.
func WithAvatars(s avatars.Storage) Option {
	return func(o *options) { o.avatars = s }
}

func buildOptions(opts []Option) options {
	o := options{now: time.Now, log: logging.Nop()}
	for _, fn := range opts {
		fn(&o)
	}
	if o.log == nil {
		o.log = logging.Nop()
	}
	return o
}
