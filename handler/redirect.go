package handler

import (
	"net/http"

	"github.com/starfederation/datastar-go/datastar"
)

type redirectResponse struct {
	url string
}

// Render answers DataStar requests with a redirect script event and
// everything else with 303 See Other.
func (r redirectResponse) Render(w http.ResponseWriter, req *http.Request) error {
	if IsDataStar(req) {
		return datastar.NewSSE(w, req).Redirect(r.url)
	}
	http.Redirect(w, req, r.url, http.StatusSeeOther)
	return nil
}

func Redirect(url string) Response {
	return redirectResponse{url: url}
}
