package blogservice

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func listWithOneBlog() []Blog {
	return []Blog{
		{
			Title:  "Go To Statement Considered Harmful",
			Author: "Edsger W. Dijkstra",
			URL:    "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html",
			Likes:  5,
		},
	}
}

func listWithManyBlogs() []Blog {
	return []Blog{
		{
			Title:  "Canonical string reduction",
			Author: "Edsger W. Dijkstra",
			URL:    "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html",
			Likes:  12,
		},
		{
			Title:  "React patterns",
			Author: "Michael Chan",
			URL:    "https://reactpatterns.com/",
			Likes:  7,
		},
		{
			Title:  "First class tests",
			Author: "Robert C. Martin",
			URL:    "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.htmll",
			Likes:  10,
		},
		{
			Title:  "Go To Statement Considered Harmful",
			Author: "Edsger W. Dijkstra",
			URL:    "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html",
			Likes:  5,
		},
		{
			Title:  "TDD harms architecture",
			Author: "Robert C. Martin",
			URL:    "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html",
			Likes:  0,
		},
		{
			Title:  "Type wars",
			Author: "Robert C. Martin",
			URL:    "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html",
			Likes:  2,
		},
	}
}

func TestTotalLikes(t *testing.T) {
	testCases := []struct {
		name  string
		blogs []Blog
		want  int
	}{
		{
			name:  "empty list",
			blogs: []Blog{},
			want:  0,
		},
		{
			name:  "one blog",
			blogs: listWithOneBlog(),
			want:  5,
		},
		{
			name:  "many blogs",
			blogs: listWithManyBlogs(),
			want:  36,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TotalLikes(tc.blogs))
		})
	}
}

func TestFavoriteBlog(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		_, ok := FavoriteBlog([]Blog{})
		assert.False(t, ok)
	})

	t.Run("one blog", func(t *testing.T) {
		got, ok := FavoriteBlog(listWithOneBlog())
		assert.True(t, ok)
		assert.Equal(t, BlogSummary{
			Title:  "Go To Statement Considered Harmful",
			Author: "Edsger W. Dijkstra",
			Likes:  5,
		}, got)
	})

	t.Run("many blogs", func(t *testing.T) {
		got, ok := FavoriteBlog(listWithManyBlogs())
		assert.True(t, ok)
		assert.Equal(t, BlogSummary{
			Title:  "Canonical string reduction",
			Author: "Edsger W. Dijkstra",
			Likes:  12,
		}, got)
	})

	t.Run("tie goes to the earliest blog", func(t *testing.T) {
		blogs := []Blog{
			{Title: "first", Author: "Kalle", Likes: 5},
			{Title: "second", Author: "Anna", Likes: 5},
			{Title: "third", Author: "Ville", Likes: 5},
		}

		got, ok := FavoriteBlog(blogs)
		assert.True(t, ok)
		assert.Equal(t, "first", got.Title)
	})

	t.Run("input is not mutated", func(t *testing.T) {
		blogs := listWithManyBlogs()
		want := listWithManyBlogs()

		_, _ = FavoriteBlog(blogs)
		assert.Equal(t, want, blogs)
	})
}

func TestMostLikedAuthor(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		_, ok := MostLikedAuthor([]Blog{})
		assert.False(t, ok)
	})

	t.Run("one blog", func(t *testing.T) {
		got, ok := MostLikedAuthor(listWithOneBlog())
		assert.True(t, ok)
		assert.Equal(t, AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 5}, got)
	})

	t.Run("many blogs", func(t *testing.T) {
		got, ok := MostLikedAuthor(listWithManyBlogs())
		assert.True(t, ok)
		assert.Equal(t, AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 17}, got)
	})
}

func TestMostProlificAuthor(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		_, ok := MostProlificAuthor([]Blog{})
		assert.False(t, ok)
	})

	t.Run("one blog", func(t *testing.T) {
		got, ok := MostProlificAuthor(listWithOneBlog())
		assert.True(t, ok)
		assert.Equal(t, AuthorCount{Author: "Edsger W. Dijkstra", Blogs: 1}, got)
	})

	t.Run("many blogs", func(t *testing.T) {
		got, ok := MostProlificAuthor(listWithManyBlogs())
		assert.True(t, ok)
		assert.Equal(t, AuthorCount{Author: "Robert C. Martin", Blogs: 3}, got)
	})
}
