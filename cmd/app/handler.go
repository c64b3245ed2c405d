package main

import (
	"net/http"

	"github.com/sushihentaime/bloglist/internal/auth"
	"github.com/sushihentaime/bloglist/internal/blogservice"
)

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	data := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": app.config.Environment,
		},
	}

	err := app.writeJSON(w, http.StatusOK, data, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) registerUserHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, err := app.userService.CreateUser(r.Context(), input.Username, input.Name, input.Email, input.Password)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, user.View(), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) loginUserHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	user, err := app.userService.Authenticate(r.Context(), input.Username, input.Password)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	token, err := app.tokens.Issue(auth.Identity{UserID: user.ID, Username: user.Username})
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	data := envelope{
		"token":    token,
		"username": user.Username,
		"name":     user.Name,
	}

	err = app.writeJSON(w, http.StatusOK, data, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getAllUsersHandler(w http.ResponseWriter, r *http.Request) {
	users, err := app.userService.GetUsers(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	views := make([]any, len(users))
	for i := range users {
		views[i] = users[i].View()
	}

	err = app.writeJSON(w, http.StatusOK, views, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getUserHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	user, err := app.userService.GetUserByID(r.Context(), id)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, user.View(), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getAllBlogsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.GetBlogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	views := make([]any, len(blogs))
	for i := range blogs {
		views[i] = blogs[i].View()
	}

	err = app.writeJSON(w, http.StatusOK, views, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) getBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	blog, err := app.blogService.GetBlogByID(r.Context(), id)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, blog.View(), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) createBlogHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Title  string `json:"title"`
		Author string `json:"author"`
		URL    string `json:"url"`
		Likes  *int   `json:"likes"`
	}

	err := app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	identity := app.getIdentityContext(r)

	blog, err := app.blogService.CreateBlog(r.Context(), &blogservice.CreateBlogRequest{
		Title:  input.Title,
		Author: input.Author,
		URL:    input.URL,
		Likes:  input.Likes,
		UserID: identity.UserID,
	})
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, blog.View(), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) updateBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	var input struct {
		Title  *string `json:"title"`
		Author *string `json:"author"`
		URL    *string `json:"url"`
		Likes  *int    `json:"likes"`
	}

	err = app.parseJSON(w, r, &input)
	if err != nil {
		app.badRequestErrorResponse(w, r, err)
		return
	}

	blog, err := app.blogService.GetBlogByID(r.Context(), id)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if !auth.CanMutate(app.getIdentityContext(r), blog) {
		app.noPermissionResponse(w, r)
		return
	}

	blog, err = app.blogService.UpdateBlog(r.Context(), blog, &blogservice.UpdateBlogRequest{
		Title:  input.Title,
		Author: input.Author,
		URL:    input.URL,
		Likes:  input.Likes,
	})
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, blog.View(), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *application) deleteBlogHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIDParam(r, "id")
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	blog, err := app.blogService.GetBlogByID(r.Context(), id)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if !auth.CanMutate(app.getIdentityContext(r), blog) {
		app.noPermissionResponse(w, r)
		return
	}

	err = app.blogService.DeleteBlog(r.Context(), id)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// statsHandler answers with the four aggregate figures over the full blog
// list. When there are no blogs at all every aggregate reads "no blogs".
func (app *application) statsHandler(w http.ResponseWriter, r *http.Request) {
	blogs, err := app.blogService.GetBlogs(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	data := envelope{
		"totalLikes":         blogservice.TotalLikes(blogs),
		"favoriteBlog":       blogservice.NoBlogs,
		"mostLikedAuthor":    blogservice.NoBlogs,
		"mostProlificAuthor": blogservice.NoBlogs,
	}

	if favorite, ok := blogservice.FavoriteBlog(blogs); ok {
		data["favoriteBlog"] = favorite
	}
	if liked, ok := blogservice.MostLikedAuthor(blogs); ok {
		data["mostLikedAuthor"] = liked
	}
	if prolific, ok := blogservice.MostProlificAuthor(blogs); ok {
		data["mostProlificAuthor"] = prolific
	}

	err = app.writeJSON(w, http.StatusOK, data, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// resetHandler wipes all blogs and users. Blogs go first, they hold a
// foreign key to their owner.
func (app *application) resetHandler(w http.ResponseWriter, r *http.Request) {
	err := app.blogService.Reset(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.userService.Reset(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
