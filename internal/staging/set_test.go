package staging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingFile(name string) *File {
	return &File{ID: "id-" + name, Name: name, ContentType: "image/png", Size: 1, Data: []byte{0xFF}}
}

func TestSetOrdering(t *testing.T) {
	s := Seed([]string{"first.jpg", "second.jpg"})
	s = s.WithPending(pendingFile("third.png"), pendingFile("fourth.png"))

	assert.Equal(t, 4, s.TotalCount())

	refs := s.Refs()
	require.Len(t, refs, 4)
	assert.Equal(t, "first.jpg", refs[0].URL)
	assert.Equal(t, "second.jpg", refs[1].URL)
	assert.Equal(t, "third.png", refs[2].File.Name)
	assert.Equal(t, "fourth.png", refs[3].File.Name)
}

func TestSetPrimary(t *testing.T) {
	t.Run("empty set has no primary", func(t *testing.T) {
		_, ok := Set{}.Primary()
		assert.False(t, ok)
	})

	t.Run("first retained wins", func(t *testing.T) {
		s := Seed([]string{"a.jpg"}).WithPending(pendingFile("b.png"))
		p, ok := s.Primary()
		require.True(t, ok)
		assert.Equal(t, "a.jpg", p.URL)
		assert.Nil(t, p.File)
	})

	t.Run("pending becomes primary when nothing is retained", func(t *testing.T) {
		s := Set{}.WithPending(pendingFile("only.png"))
		p, ok := s.Primary()
		require.True(t, ok)
		require.NotNil(t, p.File)
		assert.Equal(t, "only.png", p.File.Name)
	})

	t.Run("removing the first retained promotes the next slot", func(t *testing.T) {
		s := Seed([]string{"a.jpg", "b.jpg"}).WithRetainedRemoved(0)
		p, ok := s.Primary()
		require.True(t, ok)
		assert.Equal(t, "b.jpg", p.URL)
	})
}

func TestSeedCopies(t *testing.T) {
	source := []string{"a.jpg", "b.jpg"}
	s := Seed(source)

	source[0] = "mutated.jpg"
	assert.Equal(t, "a.jpg", s.Retained[0])
}

func TestSetRemoval(t *testing.T) {
	base := Seed([]string{"r0", "r1", "r2"}).WithPending(pendingFile("p0"), pendingFile("p1"))

	t.Run("removes a retained reference by index", func(t *testing.T) {
		s := base.WithRetainedRemoved(1)
		assert.Equal(t, []string{"r0", "r2"}, s.Retained)
		assert.Len(t, s.Pending, 2)
	})

	t.Run("removes a pending file by index", func(t *testing.T) {
		s := base.WithPendingRemoved(0)
		require.Len(t, s.Pending, 1)
		assert.Equal(t, "p1", s.Pending[0].Name)
		assert.Len(t, s.Retained, 3)
	})

	t.Run("out of range leaves the set as is", func(t *testing.T) {
		assert.Equal(t, base.TotalCount(), base.WithRetainedRemoved(7).TotalCount())
		assert.Equal(t, base.TotalCount(), base.WithPendingRemoved(-2).TotalCount())
	})

	t.Run("removal does not disturb the source set", func(t *testing.T) {
		_ = base.WithRetainedRemoved(0)
		assert.Equal(t, []string{"r0", "r1", "r2"}, base.Retained)
	})
}
