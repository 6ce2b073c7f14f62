package response

import (
	"net/http"

	"github.com/dmitrymomot/cascade/core/chain"
)

// Redirect creates a 302 Found terminal for temporary redirects.
func Redirect(url string) chain.Handler {
	return redirect(url, http.StatusFound)
}

// RedirectPermanent creates a 301 Moved Permanently terminal.
func RedirectPermanent(url string) chain.Handler {
	return redirect(url, http.StatusMovedPermanently)
}

// RedirectSeeOther creates a 303 See Other terminal, the usual answer to a
// successful POST.
func RedirectSeeOther(url string) chain.Handler {
	return redirect(url, http.StatusSeeOther)
}

// RedirectTemporary creates a 307 Temporary Redirect terminal, preserving
// the request method.
func RedirectTemporary(url string) chain.Handler {
	return redirect(url, http.StatusTemporaryRedirect)
}

func redirect(url string, status int) chain.Handler {
	return Terminal(func(w http.ResponseWriter, r *http.Request) error {
		http.Redirect(w, r, url, status)
		return nil
	})
}
