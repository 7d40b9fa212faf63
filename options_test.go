package colortransform

import (
	"log/slog"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := buildOptions(nil)
	if o.strict != defaultStrict {
		t.Errorf("strict = %v, want build default %v", o.strict, defaultStrict)
	}
	if o.pool != nil {
		t.Error("default options should run serially")
	}
	if o.logger != Logger() {
		t.Error("default logger should be the package logger")
	}
}

func TestBuildOptions(t *testing.T) {
	pool := NewPool(1)
	defer pool.Close()
	l := slog.New(nopHandler{})

	o := buildOptions([]Option{
		WithStrict(true),
		nil,
		WithPool(pool),
		WithLogger(l),
	})

	if !o.strict {
		t.Error("WithStrict(true) not applied")
	}
	if o.pool != pool {
		t.Error("WithPool not applied")
	}
	if o.logger != l {
		t.Error("WithLogger not applied")
	}
}

func TestLaterOptionsWin(t *testing.T) {
	o := buildOptions([]Option{WithStrict(true), WithStrict(false)})
	if o.strict {
		t.Error("last WithStrict should win")
	}

	o = buildOptions([]Option{WithLogger(nil)})
	if o.logger == nil {
		t.Error("nil WithLogger should fall back to the package logger")
	}
}

func TestPoolWorkers(t *testing.T) {
	pool := NewPool(3)
	if got := pool.Workers(); got != 3 {
		t.Errorf("Workers() = %d, want 3", got)
	}
	pool.Close()
	pool.Close() // idempotent

	auto := NewPool(0)
	defer auto.Close()
	if auto.Workers() < 1 {
		t.Errorf("Workers() = %d, want at least 1", auto.Workers())
	}
}
