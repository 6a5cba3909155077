package category

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lotview/internal/domain"
)

type staticSource struct {
	tree []domain.Category
	err  error
}

func (s staticSource) CategoryTree() ([]domain.Category, error) { return s.tree, s.err }

var tree = []domain.Category{
	{ID: 1, Name: "Electronics", Children: []domain.Category{
		{ID: 11, Name: "Phones"},
		{ID: 12, Name: "Computers", Children: []domain.Category{
			{ID: 121, Name: "Laptops"},
		}},
	}},
	{ID: 2, Name: "Home"},
}

func names(cs []domain.Category) []string {
	var out []string
	for _, c := range cs {
		out = append(out, c.Name)
	}
	return out
}

func TestInitialize_Root(t *testing.T) {
	s := NewService(staticSource{tree: tree})
	assert.Empty(t, s.Categories())

	require.NoError(t, s.Initialize())
	assert.Equal(t, []string{"Electronics", "Home"}, names(s.Categories()))
	assert.Equal(t, int64(0), s.CategoryID())
}

func TestInitialize_FromSearchData(t *testing.T) {
	s := NewService(staticSource{tree: tree})

	s.UpdateFromSearchData(domain.SearchCriteria{SearchCategoryID: 12})
	require.NoError(t, s.Initialize())
	assert.Equal(t, []string{"Laptops"}, names(s.Categories()))
	assert.Equal(t, "Computers", s.Current().Name)
	assert.Equal(t, []string{"Electronics", "Computers"}, names(s.Path()))

	s.UpdateFromSearchData(domain.SearchCriteria{SearchCategoryID: 11})
	require.NoError(t, s.Initialize())
	assert.Equal(t, []string{"Phones", "Computers"}, names(s.Categories()), "a leaf shows its siblings")
	assert.Equal(t, int64(11), s.CategoryID())
}

func TestInitialize_Errors(t *testing.T) {
	s := NewService(staticSource{tree: tree})
	s.UpdateFromSearchData(domain.SearchCriteria{SearchCategoryID: 999})
	assert.Error(t, s.Initialize())

	boom := errors.New("offline")
	s = NewService(staticSource{err: boom})
	assert.ErrorIs(t, s.Initialize(), boom)
}

func TestSelectAndNavigateBack(t *testing.T) {
	s := NewService(staticSource{tree: tree})
	require.NoError(t, s.Initialize())

	c, leaf := s.Select(1)
	assert.False(t, leaf)
	assert.Equal(t, "Electronics", c.Name)
	assert.Nil(t, c.Children)

	_, leaf = s.Select(12)
	assert.False(t, leaf)
	c, leaf = s.Select(121)
	assert.True(t, leaf)
	assert.Equal(t, int64(121), s.CategoryID())
	assert.Equal(t, []string{"Laptops"}, names(s.Categories()))

	_, leaf = s.Select(404)
	assert.False(t, leaf)
	assert.Equal(t, int64(121), s.CategoryID(), "unknown ids change nothing")

	assert.True(t, s.NavigateBack())
	assert.Equal(t, "Electronics", s.Current().Name)
	assert.Equal(t, []string{"Phones", "Computers"}, names(s.Categories()))

	assert.True(t, s.NavigateBack())
	assert.Equal(t, int64(0), s.CategoryID())
	assert.Equal(t, []string{"Electronics", "Home"}, names(s.Categories()))

	assert.False(t, s.NavigateBack())
}
