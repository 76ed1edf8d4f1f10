package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/unitdoc"
	"github.com/fwojciec/unitdoc/mock"
	unitslog "github.com/fwojciec/unitdoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSiteRenderer_RenderSite(t *testing.T) {
	t.Parallel()

	t.Run("logs unit count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SiteRenderer{
			RenderSiteFn: func(_ context.Context, _ []*unitdoc.Unit, _ unitdoc.FileWriter) error {
				return nil
			},
		}

		r := unitslog.NewLoggingSiteRenderer(inner, logger)
		err := r.RenderSite(context.Background(), []*unitdoc.Unit{{Name: "A"}, {Name: "B"}}, mock.NewMemoryWriter())

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, "render site")
		assert.Contains(t, output, "units=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SiteRenderer{
			RenderSiteFn: func(_ context.Context, _ []*unitdoc.Unit, _ unitdoc.FileWriter) error {
				return errors.New("disk full")
			},
		}

		err := unitslog.NewLoggingSiteRenderer(inner, logger).RenderSite(context.Background(), nil, mock.NewMemoryWriter())

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"disk full\"")
	})
}

func TestLoggingReferenceRenderer_RenderReference(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.ReferenceRenderer{
		RenderReferenceFn: func(_ context.Context, _ []*unitdoc.Unit, _ unitdoc.FileWriter) error {
			return nil
		},
	}

	err := unitslog.NewLoggingReferenceRenderer(inner, logger).RenderReference(context.Background(), []*unitdoc.Unit{{Name: "A"}}, mock.NewMemoryWriter())

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "render reference")
	assert.Contains(t, output, "units=1")
}

func TestLoggingFileWriter_WriteFile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	inner := mock.NewMemoryWriter()

	err := unitslog.NewLoggingFileWriter(inner, logger).WriteFile(context.Background(), "index.html", []byte("<html>"))

	require.NoError(t, err)
	assert.Equal(t, "<html>", inner.Files["index.html"])
	output := buf.String()
	assert.Contains(t, output, "msg=write")
	assert.Contains(t, output, "file=index.html")
	assert.Contains(t, output, "bytes=6")
}
