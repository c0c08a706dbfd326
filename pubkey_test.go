package p256k1

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// TestPubkeyCreateBaselineVector checks the literal baseline scenario: a fixed
// private key, window width 18, producing a fixed uncompressed public key.
func TestPubkeyCreateBaselineVector(t *testing.T) {
	priv := hexBytes(t, "b94314a37d334616d80d621b11a59fdd1356f6ecbb9eb19efde6e05543b41f30")
	require.Len(t, priv, 32)

	wantUncompressed := hexBytes(t, "04faf45a131fe316e7597817f532140d75bbc2b7dcd6185eabc29fa5d7f802551e5ae5b10cfc9970c0dcaa1ab7dc1b340bc5b3df687a5bce72667fd6ce6c36629")
	wantCompressed := append([]byte{0x03}, wantUncompressed[1:33]...)

	ctx, err := NewBigMultContext(18)
	require.NoError(t, err)
	defer ctx.Destroy()

	gotUncompressed, err := PubkeyCreateSerialized(ctx, priv, false)
	require.NoError(t, err)
	require.Equal(t, wantUncompressed, gotUncompressed)

	gotCompressed, err := PubkeyCreateSerialized(ctx, priv, true)
	require.NoError(t, err)
	require.Equal(t, wantCompressed, gotCompressed)
}

func TestPubkeyCreateZeroKey(t *testing.T) {
	ctx, err := NewBigMultContext(18)
	require.NoError(t, err)
	defer ctx.Destroy()

	zero := make([]byte, 32)
	_, err = PubkeyCreateSerialized(ctx, zero, false)
	require.ErrorIs(t, err, ErrInvalidKey)
}

func TestPubkeyCreateGeneratorVector(t *testing.T) {
	ctx, err := NewBigMultContext(18)
	require.NoError(t, err)
	defer ctx.Destroy()

	one := make([]byte, 32)
	one[31] = 1

	got, err := PubkeyCreateSerialized(ctx, one, true)
	require.NoError(t, err)

	if got[0] != tagPubkeyEven {
		t.Errorf("1*G compressed tag should be 0x02, got 0x%02x", got[0])
	}

	wantX := hexBytes(t, "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	if !bytes.Equal(got[1:], wantX) {
		t.Error("1*G X coordinate should equal the standard generator Gx")
	}
}

func TestPublicKeySerializeParseRoundTrip(t *testing.T) {
	ctx, err := NewBigMultContext(12)
	require.NoError(t, err)
	defer ctx.Destroy()

	seckey, err := ECSeckeyGenerate()
	require.NoError(t, err)

	for _, compressed := range []bool{true, false} {
		serialized, err := PubkeyCreateSerialized(ctx, seckey, compressed)
		require.NoError(t, err)

		parsed, err := ParsePublicKey(serialized)
		require.NoError(t, err)

		require.Equal(t, serialized, parsed.Serialize(compressed))
	}
}

func TestParsePublicKeyRejectsMalformed(t *testing.T) {
	_, err := ParsePublicKey(make([]byte, 10))
	require.ErrorIs(t, err, ErrInvalidArgument)

	bad := make([]byte, 33)
	bad[0] = 0x05
	_, err = ParsePublicKey(bad)
	require.ErrorIs(t, err, ErrInvalidArgument)
}
