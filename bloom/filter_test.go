package bloom_test

import (
	"testing"

	"github.com/fwojciec/tabrip/bloom"
	"github.com/stretchr/testify/assert"
)

func TestFilter_Seen(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(bloom.DefaultCapacity, bloom.DefaultFalsePositiveRate)

	url := "https://tabs.ultimate-guitar.com/tab/artist/song-1"

	assert.False(t, f.Seen(url), "first occurrence is new")
	assert.True(t, f.Seen(url), "second occurrence is a duplicate")
}

func TestFilter_Seen_DistinctURLs(t *testing.T) {
	t.Parallel()

	f := bloom.NewFilter(bloom.DefaultCapacity, bloom.DefaultFalsePositiveRate)

	assert.False(t, f.Seen("https://tabs.ultimate-guitar.com/tab/a/b-1"))
	assert.False(t, f.Seen("https://tabs.ultimate-guitar.com/user/tab/12345"), "distinct URLs are independent")
}
