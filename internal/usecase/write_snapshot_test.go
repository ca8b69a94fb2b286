package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/runoshun/classclock/internal/domain"
	"github.com/runoshun/classclock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSnapshot_Execute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clock.png")
	renderer := &testutil.MockSnapshotRenderer{}
	logger := &testutil.MockLogger{}
	uc := NewWriteSnapshot(&testutil.MockClock{NowTime: tuesday(11, 45)}, renderer, logger)

	out, err := uc.Execute(context.Background(), WriteSnapshotInput{Path: path, Size: 128})
	require.NoError(t, err)

	assert.Equal(t, path, out.Path)
	assert.Equal(t, "Lunch/Recess", out.View.Current().Activity)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Lunch/Recess@128", string(content))
	require.Len(t, logger.ByCategory(logSink), 1)
}

func TestWriteSnapshot_RenderErrorRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clock.png")
	renderer := &testutil.MockSnapshotRenderer{RenderErr: testutil.ErrMock}
	uc := NewWriteSnapshot(&testutil.MockClock{NowTime: tuesday(11, 45)}, renderer, &testutil.MockLogger{})

	_, err := uc.Execute(context.Background(), WriteSnapshotInput{Path: path, Size: 128})
	assert.ErrorIs(t, err, testutil.ErrMock)
	_, statErr := os.Stat(path)
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestWriteSnapshot_InvalidSize(t *testing.T) {
	renderer := &testutil.MockSnapshotRenderer{}
	uc := NewWriteSnapshot(&testutil.MockClock{NowTime: tuesday(11, 45)}, renderer, &testutil.MockLogger{})

	_, err := uc.Execute(context.Background(), WriteSnapshotInput{Path: filepath.Join(t.TempDir(), "x.png")})
	assert.ErrorIs(t, err, domain.ErrInvalidSize)
	assert.Empty(t, renderer.Views)
}
