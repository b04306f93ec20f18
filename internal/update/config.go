package update

import "time"

type RuntimeConfig struct {
	UndoToast time.Duration
	Mouse     bool
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		UndoToast: 5 * time.Second,
		Mouse:     true,
	}
}

func (c RuntimeConfig) normalized() RuntimeConfig {
	if c.UndoToast <= 0 {
		c.UndoToast = DefaultRuntimeConfig().UndoToast
	}
	return c
}
