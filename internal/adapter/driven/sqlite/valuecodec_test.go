package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaintextCodec_RoundTrip(t *testing.T) {
	codec := PlaintextCodec{}

	stored, err := codec.Encode(`raw "value" with 'quotes'`)
	require.NoError(t, err)

	out, err := codec.Decode(stored)
	require.NoError(t, err)
	assert.Equal(t, `raw "value" with 'quotes'`, out)
}

// A custom codec must see every value on both paths; this pins the seam a
// future encryption codec will slot into.
type recordingCodec struct {
	encoded, decoded int
}

func (c *recordingCodec) Encode(v string) (string, error) {
	c.encoded++
	return "enc:" + v, nil
}

func (c *recordingCodec) Decode(v string) (string, error) {
	c.decoded++
	return v[len("enc:"):], nil
}

func TestSecretRepo_ValuesPassThroughCodec(t *testing.T) {
	db := setupTestDB(t)
	codec := &recordingCodec{}
	repo := NewSecretRepo(db, codec)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, "K", "plain"))
	assert.Equal(t, 1, codec.encoded)

	summaries, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "*****", summaries[0].MaskedValue, "mask applies to the decoded value")

	val, err := repo.GetValue(ctx, summaries[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "plain", val)
	assert.GreaterOrEqual(t, codec.decoded, 2)
}
