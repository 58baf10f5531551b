//go:build integration

package repository

import (
	"os"
	"os/signal"
	"syscall"
	"testing"

	"admin-console-backend/internal/testutils"

	"github.com/sirupsen/logrus"
)

// TestMain runs before all repository tests and ensures proper Docker cleanup
func TestMain(m *testing.M) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		logrus.Warn("repository tests interrupted, cleaning up docker containers")
		testutils.CleanupSharedContainer()
		os.Exit(1)
	}()

	code := m.Run()
	testutils.CleanupSharedContainer()
	os.Exit(code)
}
