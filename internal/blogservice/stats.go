package blogservice

// Aggregation helpers over an already-materialized blog list. All of them
// are pure: the input slice is never mutated and every result is a freshly
// constructed value.

// NoBlogs is rendered in place of an aggregate when the input is empty.
const NoBlogs = "no blogs"

// BlogSummary is the {title, author, likes} projection of a single blog.
type BlogSummary struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

type AuthorLikes struct {
	Author string `json:"author"`
	Likes  int    `json:"likes"`
}

type AuthorCount struct {
	Author string `json:"author"`
	Blogs  int    `json:"blogs"`
}

// TotalLikes sums the likes of all blogs. An empty list sums to zero.
func TotalLikes(blogs []Blog) int {
	total := 0
	for _, b := range blogs {
		total += b.Likes
	}

	return total
}

// FavoriteBlog returns the blog with the most likes. Ties go to the
// earliest blog in the input. The second return value is false for an
// empty list.
func FavoriteBlog(blogs []Blog) (BlogSummary, bool) {
	if len(blogs) == 0 {
		return BlogSummary{}, false
	}

	best := blogs[0]
	for _, b := range blogs[1:] {
		if b.Likes > best.Likes {
			best = b
		}
	}

	return BlogSummary{Title: best.Title, Author: best.Author, Likes: best.Likes}, true
}

// MostLikedAuthor returns the author whose blogs have the highest combined
// like count. The winner among tied authors is unspecified and must not be
// relied upon. The second return value is false for an empty list.
func MostLikedAuthor(blogs []Blog) (AuthorLikes, bool) {
	if len(blogs) == 0 {
		return AuthorLikes{}, false
	}

	likesByAuthor := make(map[string]int)
	for _, b := range blogs {
		likesByAuthor[b.Author] += b.Likes
	}

	var (
		top   AuthorLikes
		found bool
	)
	for author, likes := range likesByAuthor {
		if !found || likes > top.Likes {
			top = AuthorLikes{Author: author, Likes: likes}
			found = true
		}
	}

	return top, true
}

// MostProlificAuthor returns the author with the most blogs. The winner
// among tied authors is unspecified and must not be relied upon. The
// second return value is false for an empty list.
func MostProlificAuthor(blogs []Blog) (AuthorCount, bool) {
	if len(blogs) == 0 {
		return AuthorCount{}, false
	}

	countByAuthor := make(map[string]int)
	for _, b := range blogs {
		countByAuthor[b.Author]++
	}

	var (
		top   AuthorCount
		found bool
	)
	for author, count := range countByAuthor {
		if !found || count > top.Blogs {
			top = AuthorCount{Author: author, Blogs: count}
			found = true
		}
	}

	return top, true
}
