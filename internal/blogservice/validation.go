package blogservice

import "github.com/sushihentaime/bloglist/internal/common"

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(v.CheckStringLength(title, 3, 50), "title", "must be between 3 and 50 characters long")
}

func validateAuthor(v *common.Validator, author string) {
	v.Check(author != "", "author", "must be provided")
	v.Check(v.CheckStringLength(author, 3, 50), "author", "must be between 3 and 50 characters long")
}

func validateURL(v *common.Validator, url string) {
	v.Check(url != "", "url", "must be provided")
	v.Check(v.CheckStringLength(url, 6, 300), "url", "must be between 6 and 300 characters long")
}

func validateLikes(v *common.Validator, likes int) {
	v.Check(likes >= 0, "likes", "must not be negative")
}
