package computer

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	perrors "github.com/randalmurphal/patternkit/pkg/patternkit/errors"
	"github.com/randalmurphal/patternkit/pkg/patternkit/singleton"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewOS(t *testing.T) {
	os, err := NewOS(context.Background(), "  Windows 9.1 ")
	require.NoError(t, err)
	assert.Equal(t, "Windows 9.1", os.Name())

	_, err = NewOS(context.Background(), " ")
	var valErr *perrors.ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "name", valErr.Field)
}

func TestLaunchPairSharesFirstOS(t *testing.T) {
	reg := NewRegistry()

	names, err := LaunchPair(context.Background(), reg, "Windows 9.1", "Windows 11.1", discardLogger())
	require.NoError(t, err)
	assert.Equal(t, [2]string{"Windows 9.1", "Windows 9.1"}, names)
	assert.Equal(t, "os", reg.Name())
}

func TestLaunchRejectsBlankName(t *testing.T) {
	reg := NewRegistry()
	comp := New(discardLogger())

	err := comp.Launch(context.Background(), reg, "")
	require.ErrorIs(t, err, singleton.ErrConstruction)
	assert.Nil(t, comp.OS())

	require.NoError(t, comp.Launch(context.Background(), reg, "Linux"))
	assert.Equal(t, "Linux", comp.OS().Name())
}

func TestManyComputersShareOneOS(t *testing.T) {
	reg := NewRegistry()
	var wg sync.WaitGroup
	oses := make([]*OS, 20)

	for i := range oses {
		wg.Add(1)
		go func() {
			defer wg.Done()
			comp := New(discardLogger())
			assert.NoError(t, comp.Launch(context.Background(), reg, "build-"+string(rune('a'+i))))
			oses[i] = comp.OS()
		}()
	}
	wg.Wait()

	for _, os := range oses {
		assert.Same(t, oses[0], os)
	}
	assert.Equal(t, int64(1), reg.Constructions())
}
