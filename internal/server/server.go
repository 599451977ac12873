package server

import (
	"io"
	"net/http"
	"os"
	"path"
	"path/filepath"

	"github.com/bakurvik/mylib/libadmin/internal/database"
	"github.com/bakurvik/mylib/libadmin/internal/metrics"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	PingPath             = "/ping"
	MetricsPath          = "/metrics"
	ApiPath              = "/api/"
	ApiBooksPath         = "/api/books"
	ApiMembersPath       = "/api/members"
	ApiIssuePath         = "/api/issue"
	ApiReservePath       = "/api/reserve"
	ApiReservedBooksPath = "/api/reserved-books"
	ApiStudyRoomsPath    = "/api/study-rooms"
	ApiFinesPath         = "/api/fines"
)

const (
	routeNotFoundMessage    = "Route not found"
	invalidRequestMessage   = "Invalid request body"
	unknownReferenceMessage = "Unknown book or member"
)

type ApiConfig struct {
	DB        *database.Queries
	Metrics   *metrics.Metrics
	StaticDir string
}

func Handle(sm *http.ServeMux, apiCfg *ApiConfig) {
	// Ping
	sm.HandleFunc("GET "+PingPath, apiCfg.HandlePing)

	// Books
	sm.HandleFunc("POST "+ApiBooksPath, apiCfg.HandlePostApiBooks)
	sm.HandleFunc("GET "+ApiBooksPath, apiCfg.HandleGetApiBooks)

	// Members
	sm.HandleFunc("POST "+ApiMembersPath, apiCfg.HandlePostApiMembers)
	sm.HandleFunc("GET "+ApiMembersPath, apiCfg.HandleGetApiMembers)

	// Loans
	sm.HandleFunc("POST "+ApiIssuePath, apiCfg.HandlePostApiIssue)
	sm.HandleFunc("GET "+ApiIssuePath, apiCfg.HandleGetApiIssue)

	// Reservations
	sm.HandleFunc("POST "+ApiReservePath, apiCfg.HandlePostApiReserve)
	sm.HandleFunc("GET "+ApiReservedBooksPath, apiCfg.HandleGetApiReservedBooks)

	// Study rooms
	sm.HandleFunc("POST "+ApiStudyRoomsPath, apiCfg.HandlePostApiStudyRooms)
	sm.HandleFunc("GET "+ApiStudyRoomsPath, apiCfg.HandleGetApiStudyRooms)

	// Fines
	sm.HandleFunc("POST "+ApiFinesPath, apiCfg.HandlePostApiFines)

	// Metrics
	if apiCfg.Metrics != nil {
		sm.Handle("GET "+MetricsPath, apiCfg.Metrics.Handler())
	}

	// Swagger
	sm.Handle("/swagger/", httpSwagger.WrapHandler)

	sm.HandleFunc(ApiPath, apiCfg.HandleNotFound)
	sm.Handle("/", apiCfg.staticHandler())
}

// @Summary Ping the server
// @Description  Checks server health. Returns 200 OK if server is up.
// @Tags Health
// @Produce json
// @Success 200 {string} string
// @Router /ping [get]
func (cfg *ApiConfig) HandlePing(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (cfg *ApiConfig) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	respondWithRequestError(w, r, &RequestError{Kind: KindNotFound, Message: routeNotFoundMessage})
}

// staticHandler serves the browser front-end. Anything that is not a file
// under StaticDir (or a directory with an index.html) gets the JSON 404.
func (cfg *ApiConfig) staticHandler() http.Handler {
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if cfg.StaticDir == "" || (r.Method != http.MethodGet && r.Method != http.MethodHead) {
			cfg.HandleNotFound(w, r)
			return
		}
		name := filepath.Join(cfg.StaticDir, filepath.FromSlash(path.Clean("/"+r.URL.Path)))
		info, err := os.Stat(name)
		if err == nil && info.IsDir() {
			info, err = os.Stat(filepath.Join(name, "index.html"))
		}
		if err != nil || info.IsDir() {
			cfg.HandleNotFound(w, r)
			return
		}
		fileServer.ServeHTTP(w, r)
	})
}

// decodeRequest reads the JSON body into request. An empty body decodes to
// the zero request, so the handler reports the missing fields.
func decodeRequest(r *http.Request, request any) error {
	err := json.NewDecoder(r.Body).Decode(request)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}
	return &RequestError{Kind: KindValidation, Message: invalidRequestMessage, Err: err}
}
