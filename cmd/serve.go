package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordsheet/chord"
	"github.com/jsphweid/chordsheet/db"
	"github.com/jsphweid/chordsheet/logging"
	"github.com/jsphweid/chordsheet/model"
	"github.com/jsphweid/chordsheet/root"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// 1 MiB is far more than any song sheet
const maxBodySize = 1 << 20

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the HTTP API",
	Long:  `Serves find, simplify and transpose over HTTP, plus stored sheets.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newStore(cfg)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
		defer stop()
		return serve(ctx, cfg.Addr, NewRouter(store, cfg.CorsOrigins))
	},
}

func serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		logging.L().Info("serving", zap.String("addr", addr))
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return errors.Wrap(err, "server stopped")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "could not shut down")
	}
	if err := <-errc; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

type api struct {
	store *db.Store
}

// NewRouter builds the HTTP API. Sheet routes are only mounted when store
// is not nil.
func NewRouter(store *db.Store, origins []string) http.Handler {
	a := &api{store: store}

	router := mux.NewRouter().StrictSlash(true)
	router.Use(withRequestId)
	router.HandleFunc("/health", handleHealth).Methods("GET")
	router.HandleFunc("/find", HandleFind).Methods("POST")
	router.HandleFunc("/simplify", HandleSimplify).Methods("POST")
	router.HandleFunc("/transpose", HandleTranspose).Methods("POST")
	if store != nil {
		router.HandleFunc("/sheets", a.handlePutSheet).Methods("POST")
		router.HandleFunc("/sheets/{id}", a.handleGetSheet).Methods("GET")
	}

	c := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		ExposedHeaders: []string{"X-Request-Id"},
	})
	return c.Handler(router)
}

func withRequestId(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		logging.L().Info("request",
			zap.String("id", id),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)))
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.L().Warn("could not write response", zap.Error(err))
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(v)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "could not read request body"))
		return false
	}
	return true
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func HandleFind(w http.ResponseWriter, r *http.Request) {
	var input model.FindRequestBody
	if !decode(w, r, &input) {
		return
	}
	var chords []model.Chord
	if input.Simplify {
		chords = chord.FindSimplified(input.Text)
	} else {
		chords = chord.Find(input.Text)
	}
	if chords == nil {
		chords = []model.Chord{}
	}
	writeJSON(w, http.StatusOK, model.FindResponse{Chords: chords})
}

func HandleSimplify(w http.ResponseWriter, r *http.Request) {
	var input model.SimplifyRequestBody
	if !decode(w, r, &input) {
		return
	}
	writeJSON(w, http.StatusOK, model.TextResponse{Text: chord.SimplifyText(input.Text)})
}

func HandleTranspose(w http.ResponseWriter, r *http.Request) {
	var input model.TransposeRequestBody
	if !decode(w, r, &input) {
		return
	}
	from, err := root.Parse(input.From)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "from"))
		return
	}
	if input.To == "" {
		writeJSON(w, http.StatusOK, model.TextResponse{Text: input.Text})
		return
	}
	to, err := root.Parse(input.To)
	if err != nil {
		writeError(w, http.StatusBadRequest, errors.Wrap(err, "to"))
		return
	}
	text, chords := chord.TransposeTextChords(input.Text, from, to)
	writeJSON(w, http.StatusOK, model.TextResponse{Text: text, Chords: chords})
}

func (a *api) handlePutSheet(w http.ResponseWriter, r *http.Request) {
	var input model.SheetRequestBody
	if !decode(w, r, &input) {
		return
	}
	sheet, err := a.store.PutSheet(r.Context(), model.Sheet{
		Title: input.Title,
		Key:   input.Key,
		Text:  input.Text,
	})
	if err != nil {
		logging.L().Error("could not store sheet", zap.Error(err))
		writeError(w, http.StatusInternalServerError, errors.New("could not store sheet"))
		return
	}
	writeJSON(w, http.StatusCreated, sheet)
}

func (a *api) handleGetSheet(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	sheet, err := a.store.GetSheet(r.Context(), id)
	if errors.Is(err, db.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		logging.L().Error("could not get sheet", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, errors.New("could not get sheet"))
		return
	}

	if to := r.URL.Query().Get("to"); to != "" {
		target, err := root.Parse(to)
		if err != nil {
			writeError(w, http.StatusBadRequest, errors.Wrap(err, "to"))
			return
		}
		sheet.Text = chord.TransposeText(sheet.Text, sheet.Key, target)
		sheet.Key = target
	}
	writeJSON(w, http.StatusOK, sheet)
}
