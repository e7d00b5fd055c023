package log

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]Level{
		"debug":   DebugLevel,
		"info":    InfoLevel,
		"warn":    WarnLevel,
		"warning": WarnLevel,
		"error":   ErrorLevel,
	} {
		got, err := ParseLevel(name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if got != want {
			t.Errorf("%s: expected %s, got %s", name, want, got)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Errorf("expected an error for an unknown level")
	}
}

func TestNew(t *testing.T) {
	l, ok := New(WarnLevel).(*logrus.Logger)
	if !ok {
		t.Fatalf("expected a *logrus.Logger")
	}
	if l.GetLevel() != WarnLevel {
		t.Errorf("expected level %s, got %s", WarnLevel, l.GetLevel())
	}
	if l.IsLevelEnabled(InfoLevel) {
		t.Errorf("expected info to be filtered at warn level")
	}
}

func TestNullLogger(t *testing.T) {
	l := NewNullLogger()
	l.Debugf("%d", 1)
	l.Infof("%d", 2)
	l.Warnf("%d", 3)
	l.Errorf("%d", 4)
}
