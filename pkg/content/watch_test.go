package content_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/goliatone/go-fitm8/pkg/content"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestWatch_ReloadsOnWriteAndKeepsPreviousOnError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0o600))

	store := content.NewStore(nil)
	ctx, cancel := context.WithCancel(context.Background())
	results := make(chan error, 4)
	w, err := content.Watch(ctx, path, store, zap.NewNop(),
		content.WithDebounce(50*time.Millisecond),
		content.WithReloadHook(func(_ *content.Content, err error) { results <- err }),
	)
	require.NoError(t, err)
	defer func() {
		cancel()
		w.Wait()
	}()

	updated := strings.Replace(minimal, "Alex Johnson", "Jamie Rivera", 1)
	require.NoError(t, os.WriteFile(path, []byte(updated), 0o600))

	select {
	case err := <-results:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("reload not observed")
	}
	require.Equal(t, "Jamie Rivera", store.Get().Testimonials.Items[0].Name)

	require.NoError(t, os.WriteFile(path, []byte("brand: FitM8\n"), 0o600))
	select {
	case err := <-results:
		require.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("failed reload not observed")
	}
	require.Equal(t, "Jamie Rivera", store.Get().Testimonials.Items[0].Name)
}

func TestWatch_MissingDirectory(t *testing.T) {
	_, err := content.Watch(context.Background(), filepath.Join(t.TempDir(), "nope", "content.yaml"), content.NewStore(nil), nil)
	require.Error(t, err)
}
