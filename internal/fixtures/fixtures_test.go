package fixtures

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nodegraph/pkstream/pkstream"
)

func TestCorpusStoreLoadRoundTrip(t *testing.T) {
	corpus, err := Open(t.TempDir())
	require.NoError(t, err)

	buf := pkstream.NewBuffer()
	require.NoError(t, pkstream.NewPacker().Pack(buf, pkstream.Map([]pkstream.MapEntry{
		{Key: "name", Value: pkstream.String("Alice")},
		{Key: "age", Value: pkstream.IntFromInt64(30)},
	})))

	require.NoError(t, corpus.Store("person", buf.Bytes()))

	got, err := corpus.Load("person")
	require.NoError(t, err)
	require.Equal(t, buf.Bytes(), got)

	v, err := pkstream.NewUnpacker(nil).Unpack(pkstream.NewBufferFromBytes(got))
	require.NoError(t, err)
	entries, err := v.AsMap()
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestCorpusNamesSorted(t *testing.T) {
	corpus, err := Open(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, corpus.Store("zeta", []byte{0xC0}))
	require.NoError(t, corpus.Store("alpha", []byte{0xC0}))

	names, err := corpus.Names()
	require.NoError(t, err)
	require.Equal(t, []string{"alpha", "zeta"}, names)
}

func TestCorpusLoadMissingErrors(t *testing.T) {
	corpus, err := Open(t.TempDir())
	require.NoError(t, err)

	_, err = corpus.Load("nope")
	require.Error(t, err)
}
