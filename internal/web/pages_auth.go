package web

import (
	"errors"
	"net/http"
	"strings"

	"github.com/bissquit/auctionhub/internal/identity"
	"github.com/bissquit/auctionhub/internal/pkg/httputil"
)

type loginView struct {
	Next         string
	DemoAccounts []DemoAccount
}

// LoginPage handles GET /login.
func (h *Handler) LoginPage(w http.ResponseWriter, r *http.Request) {
	next := r.URL.Query().Get("next")
	if s, ok := session(r); ok {
		h.redirect(w, r, httputil.SafeNext(next, landing(s.Role)))
		return
	}

	page := h.newPage(w, r, "Sign in")
	page.Data = loginView{Next: next, DemoAccounts: h.cfg.DemoAccounts}
	h.render(w, r, http.StatusOK, "login", page)
}

// Login handles POST /login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	identifier := strings.TrimSpace(r.PostForm.Get("identifier"))
	next := r.PostForm.Get("next")

	p := identity.FromContext(r.Context())
	if p == nil {
		h.serverError(w, r, errors.New("session middleware not installed"))
		return
	}

	s, err := p.Login(r.Context(), identifier, r.PostForm.Get("password"))
	if err == nil {
		h.flash(w, NoticeSuccess, "Welcome back, "+s.DisplayName())
		h.redirect(w, r, httputil.SafeNext(next, landing(s.Role)))
		return
	}

	var message string
	status := http.StatusUnprocessableEntity
	switch {
	case errors.Is(err, identity.ErrSessionActive):
		current, _ := p.Current()
		h.redirect(w, r, httputil.SafeNext(next, landing(current.Role)))
		return
	case errors.Is(err, identity.ErrNotReady):
		h.Loading(w, r)
		return
	case errors.Is(err, identity.ErrValidation):
		message = "Please enter your username or email and password."
	case errors.Is(err, identity.ErrAuthenticationRejected):
		message = "Invalid username or password."
		status = http.StatusUnauthorized
	default:
		h.serverError(w, r, err)
		return
	}

	page := h.newPage(w, r, "Sign in")
	page.Error = message
	page.Form["identifier"] = identifier
	page.Data = loginView{Next: next, DemoAccounts: h.cfg.DemoAccounts}
	h.render(w, r, status, "login", page)
}

// SignupForm is the account registration form.
type SignupForm struct {
	Username        string `form:"username" validate:"required,max=64"`
	Email           string `form:"email" validate:"required,email"`
	Name            string `form:"name" validate:"max=128"`
	Password        string `form:"password" validate:"required,min=8"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

var signupLabels = map[string]string{
	"username":        "Username",
	"email":           "Email",
	"name":            "Name",
	"password":        "Password",
	"confirmPassword": "Password confirmation",
}

// SignupPage handles GET /signup.
func (h *Handler) SignupPage(w http.ResponseWriter, r *http.Request) {
	if s, ok := session(r); ok {
		h.redirect(w, r, landing(s.Role))
		return
	}
	h.render(w, r, http.StatusOK, "signup", h.newPage(w, r, "Create account"))
}

// Signup handles POST /signup.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := SignupForm{
		Username:        strings.TrimSpace(r.PostForm.Get("username")),
		Email:           strings.TrimSpace(r.PostForm.Get("email")),
		Name:            strings.TrimSpace(r.PostForm.Get("name")),
		Password:        r.PostForm.Get("password"),
		ConfirmPassword: r.PostForm.Get("confirmPassword"),
	}

	rerender := func(status int, message string, errs map[string]string) {
		page := h.newPage(w, r, "Create account")
		page.Error = message
		if errs != nil {
			page.Errors = errs
		}
		page.Form["username"] = form.Username
		page.Form["email"] = form.Email
		page.Form["name"] = form.Name
		h.render(w, r, status, "signup", page)
	}

	if errs := h.validateForm(form, signupLabels); errs != nil {
		rerender(http.StatusUnprocessableEntity, "", errs)
		return
	}

	p := identity.FromContext(r.Context())
	if p == nil {
		h.serverError(w, r, errors.New("session middleware not installed"))
		return
	}

	s, err := p.Signup(r.Context(), identity.SignupInput{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
		Name:     form.Name,
	})
	switch {
	case err == nil:
		h.flash(w, NoticeSuccess, "Account created successfully")
		h.redirect(w, r, landing(s.Role))
	case errors.Is(err, identity.ErrSessionActive):
		current, _ := p.Current()
		h.redirect(w, r, landing(current.Role))
	case errors.Is(err, identity.ErrNotReady):
		h.Loading(w, r)
	case errors.Is(err, identity.ErrValidation):
		rerender(http.StatusUnprocessableEntity, "Please fill in all required fields.", nil)
	default:
		h.serverError(w, r, err)
	}
}

// Logout handles POST /logout. It succeeds without a session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if p := identity.FromContext(r.Context()); p != nil {
		if err := p.Logout(r.Context()); err != nil {
			h.serverError(w, r, err)
			return
		}
	}
	h.flash(w, NoticeInfo, "You have been logged out")
	h.redirect(w, r, "/")
}

// ForgotPasswordForm requests reset instructions.
type ForgotPasswordForm struct {
	Email string `form:"email" validate:"required,email"`
}

// ForgotPasswordPage handles GET /forgot-password.
func (h *Handler) ForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, "forgot_password", h.newPage(w, r, "Forgot password"))
}

// ForgotPassword handles POST /forgot-password. No mail is sent; a valid
// address is always confirmed so the page does not reveal which accounts exist.
func (h *Handler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := ForgotPasswordForm{Email: strings.TrimSpace(r.PostForm.Get("email"))}

	page := h.newPage(w, r, "Forgot password")
	page.Form["email"] = form.Email
	if errs := h.validateForm(form, map[string]string{"email": "Email"}); errs != nil {
		page.Errors = errs
		h.render(w, r, http.StatusUnprocessableEntity, "forgot_password", page)
		return
	}

	page.Data = map[string]bool{"Sent": true}
	h.render(w, r, http.StatusOK, "forgot_password", page)
}

// ResetPasswordForm sets a new password.
type ResetPasswordForm struct {
	Password        string `form:"password" validate:"required,min=8"`
	ConfirmPassword string `form:"confirmPassword" validate:"required,eqfield=Password"`
}

// ResetPasswordPage handles GET /reset-password.
func (h *Handler) ResetPasswordPage(w http.ResponseWriter, r *http.Request) {
	page := h.newPage(w, r, "Reset password")
	page.Form["token"] = r.URL.Query().Get("token")
	h.render(w, r, http.StatusOK, "reset_password", page)
}

// ResetPassword handles POST /reset-password.
func (h *Handler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := ResetPasswordForm{
		Password:        r.PostForm.Get("password"),
		ConfirmPassword: r.PostForm.Get("confirmPassword"),
	}

	if errs := h.validateForm(form, map[string]string{"password": "Password", "confirmPassword": "Password confirmation"}); errs != nil {
		page := h.newPage(w, r, "Reset password")
		page.Errors = errs
		page.Form["token"] = r.PostForm.Get("token")
		h.render(w, r, http.StatusUnprocessableEntity, "reset_password", page)
		return
	}

	h.flash(w, NoticeSuccess, "Your password has been reset. Please sign in.")
	h.redirect(w, r, "/login")
}
