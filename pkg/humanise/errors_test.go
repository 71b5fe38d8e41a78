package humanise_test

import (
	"context"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"

	"go.mau.fi/tgfileid/pkg/fileid"
	"go.mau.fi/tgfileid/pkg/humanise"
)

func TestError(t *testing.T) {
	_, err := fileid.DecodeFileID("AQADAgATqfDdly4AAwMAA4siCOX_____AAhKowIAAR4E")
	assert.Contains(t, humanise.Error(err), "Supported versions are 2, 4.22 and 4.27")

	_, err = fileid.DecodeFileID("CAADBAADwwADmFmqDQI")
	assert.Equal(t, "The identifier is truncated or corrupted, one of its fields couldn't be read", humanise.Error(err))

	wrapped := errors.Wrap(context.Canceled, "process batch")
	assert.Equal(t, "The operation was cancelled", humanise.Error(wrapped))

	assert.Equal(t, "something else", humanise.Error(errors.New("something else")))
	assert.Empty(t, humanise.Error(nil))
}
