package pace_test

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/treedepth/elimtree"
	"github.com/katalvlaran/treedepth/order"
	"github.com/katalvlaran/treedepth/pace"
)

func TestRead_ParsesHeaderCommentsAndEdges(t *testing.T) {
	input := "c a comment\np tdp 4 3\nc another comment\n1 2\n2 3\n3 4\n"
	g, err := pace.Read(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 4, g.NodeCount())
	assert.Equal(t, 6, g.ArcCount())
}

func TestRead_MalformedHeader(t *testing.T) {
	_, err := pace.Read(strings.NewReader("p wrongkind 4 3\n1 2\n"))
	assert.ErrorIs(t, err, pace.ErrMalformedHeader)
}

func TestRead_NodeOutOfRange(t *testing.T) {
	_, err := pace.Read(strings.NewReader("p tdp 3 1\n1 5\n"))
	assert.ErrorIs(t, err, pace.ErrNodeRange)
}

func TestRead_DuplicateEdge(t *testing.T) {
	_, err := pace.Read(strings.NewReader("p tdp 3 2\n1 2\n2 1\n"))
	assert.ErrorIs(t, err, pace.ErrDuplicateEdge)
}

func TestRead_TruncatedEdgeList(t *testing.T) {
	_, err := pace.Read(strings.NewReader("p tdp 3 2\n1 2\n"))
	assert.ErrorIs(t, err, pace.ErrMalformedHeader)
}

func TestWrite_DepthThenOneBasedParents(t *testing.T) {
	parent := []int32{elimtree.Root, 0, 0}
	var buf bytes.Buffer
	require.NoError(t, pace.Write(&buf, parent, 2))
	assert.Equal(t, "2\n0\n1\n1\n", buf.String())
}

func TestReadThenWrite_RoundTripsOverGraph(t *testing.T) {
	input := "p tdp 5 4\n1 2\n2 3\n3 4\n4 5\n"
	g, err := pace.Read(strings.NewReader(input))
	require.NoError(t, err)

	ord := order.Greedy(g)
	parent := elimtree.Build(g, ord)
	depth := elimtree.Depth(parent)

	var buf bytes.Buffer
	require.NoError(t, pace.Write(&buf, parent, depth))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, g.NodeCount()+1)
	assert.Equal(t, strconv.Itoa(depth), lines[0])
}

func TestRead_EmptyInput(t *testing.T) {
	_, err := pace.Read(strings.NewReader(""))
	require.Error(t, err)
	assert.True(t, errors.Is(err, pace.ErrMalformedHeader))
}
