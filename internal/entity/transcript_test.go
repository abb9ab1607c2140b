package entity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_BucketForCategory(t *testing.T) {
	require.Equal(t, BucketUniversity, BucketForCategory("1"))
	require.Equal(t, BucketMorality, BucketForCategory("2.1"))
	require.Equal(t, BucketThinking, BucketForCategory("2.2"))
	require.Equal(t, BucketRelation, BucketForCategory("2.3"))
	require.Equal(t, BucketHealth, BucketForCategory("2.4"))

	// Anything else falls back to society, including garbage codes.
	require.Equal(t, BucketSociety, BucketForCategory("3"))
	require.Equal(t, BucketSociety, BucketForCategory(""))
	require.Equal(t, BucketSociety, BucketForCategory("2.5"))
}
