package adapthttp

import (
	"errors"
	"net/http"
	"strconv"

	"blog/internal/domain"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	posts, err := s.posts.List(r.Context())
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	s.render.Render(w, http.StatusOK, "index", &TemplateData{
		User:  userFrom(r.Context()),
		Posts: posts,
	})
}

// handleShow is the public single-post view; it skips the ownership check
// since reading is open to everyone.
func (s *Server) handleShow(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}

	post, err := s.posts.GetPost(r.Context(), id, 0, false)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render.Render(w, http.StatusOK, "post", &TemplateData{
		User: userFrom(r.Context()),
		Post: post,
	})
}

func (s *Server) handleCreateForm(w http.ResponseWriter, r *http.Request) {
	s.render.Render(w, http.StatusOK, "create", &TemplateData{User: userFrom(r.Context())})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	user := userFrom(r.Context())
	title := r.PostFormValue("title")
	body := r.PostFormValue("body")

	if _, err := s.posts.Create(r.Context(), user.ID, title, body); err != nil {
		if domain.IsValidation(err) {
			s.render.Render(w, http.StatusBadRequest, "create", &TemplateData{
				User:  user,
				Error: err.Error(),
				Form:  map[string]string{"title": title, "body": body},
			})
			return
		}
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleUpdateForm(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	user := userFrom(r.Context())

	post, err := s.posts.GetPost(r.Context(), id, user.ID, true)
	if err != nil {
		s.renderError(w, r, err)
		return
	}
	s.render.Render(w, http.StatusOK, "update", &TemplateData{
		User: user,
		Post: post,
		Form: map[string]string{"title": post.Title, "body": post.Body},
	})
}

func (s *Server) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	user := userFrom(r.Context())
	title := r.PostFormValue("title")
	body := r.PostFormValue("body")

	if err := s.posts.Update(r.Context(), user.ID, id, title, body); err != nil {
		if domain.IsValidation(err) {
			post, getErr := s.posts.GetPost(r.Context(), id, user.ID, true)
			if getErr != nil {
				s.renderError(w, r, getErr)
				return
			}
			s.render.Render(w, http.StatusBadRequest, "update", &TemplateData{
				User:  user,
				Error: err.Error(),
				Post:  post,
				Form:  map[string]string{"title": title, "body": body},
			})
			return
		}
		s.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := postID(w, r)
	if !ok {
		return
	}
	user := userFrom(r.Context())

	if err := s.posts.Delete(r.Context(), user.ID, id); err != nil {
		s.renderError(w, r, err)
		return
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// postID parses the {id} route parameter, writing a 404 on garbage.
func postID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return 0, false
	}
	return id, true
}

// renderError maps domain errors to their HTTP status and renders the error
// page. Not-found and forbidden terminate the request; nothing was written
// before the checks ran.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrPostNotFound):
		s.render.Render(w, http.StatusNotFound, "error", &TemplateData{
			User:  userFrom(r.Context()),
			Error: err.Error(),
		})
	case errors.Is(err, domain.ErrForbidden):
		s.render.Render(w, http.StatusForbidden, "error", &TemplateData{
			User:  userFrom(r.Context()),
			Error: "You are not allowed to modify this post.",
		})
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
