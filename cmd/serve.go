package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/chordex/chord"
	"github.com/jsphweid/chordex/constants"
	"github.com/jsphweid/chordex/file"
	"github.com/jsphweid/chordex/midi"
	"github.com/jsphweid/chordex/model"
	"github.com/jsphweid/chordex/sample"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"gitlab.com/gomidi/midi/v2/smf"
)

const maxBodyBytes = 1 << 20

var (
	errInvalidBody  = errors.New("invalid request body")
	errBodyTooLarge = errors.New("request body too large")
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default $CHORDEX_ADDR or :8080)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the analysis API",
	Long:  `Serves chord analysis, shape catalog and MIDI export over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		addr := serveAddr
		if addr == "" {
			addr = constants.GetAddr()
		}
		serve(addr)
	},
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errInvalidBody), errors.Is(err, chord.ErrInvalidChord):
		return http.StatusBadRequest
	case errors.Is(err, errBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, sample.ErrOutOfRange):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("could not encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		sentry.CaptureException(err)
	}
	log.Printf("[%s] %s %s: %d %v", w.Header().Get("X-Request-Id"), r.Method, r.URL.Path, status, err)
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func writeMidi(w http.ResponseWriter, r *http.Request, s *smf.SMF) {
	var buf bytes.Buffer
	if err := midi.Write(&buf, s); err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "audio/midi")
	w.Header().Set("Content-Disposition", `attachment; filename="chords.mid"`)
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

func resolveBody(w http.ResponseWriter, r *http.Request) ([]model.ChordSpec, error) {
	doc, err := file.Read(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return nil, errors.Wrapf(errBodyTooLarge, "limit is %d bytes", tooLarge.Limit)
	}
	if err != nil {
		return nil, errors.Wrap(errInvalidBody, err.Error())
	}
	return file.Resolve(doc, keyFlag, bpmFlag)
}

func HandleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.HealthResponse{Status: "ok"})
}

func HandleShapes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, model.ShapesResponse{Shapes: chord.Catalog()})
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	seq, err := resolveBody(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	res, err := chord.Analyze(seq)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.AnalyzeResponse{Chords: res})
}

func HandleMidi(w http.ResponseWriter, r *http.Request) {
	seq, err := resolveBody(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s, err := midi.Export(seq)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeMidi(w, r, s)
}

// HandlePreview exports the chords from the 1-based index in the path. An
// optional count query parameter limits how many.
func HandlePreview(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		writeError(w, r, errors.Wrap(errInvalidBody, "index must be a number"))
		return
	}
	var count int
	if c := r.URL.Query().Get("count"); c != "" {
		count, err = strconv.Atoi(c)
		if err != nil {
			writeError(w, r, errors.Wrap(errInvalidBody, "count must be a number"))
			return
		}
	}

	seq, err := resolveBody(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s, err := sample.Create(seq, index-1, count)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeMidi(w, r, s)
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		log.Printf("[%s] %s %s", id, r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
	})
}

func withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				sentry.CurrentHub().Recover(rec)
				writeError(w, r, errors.Errorf("panic: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/health", HandleHealth).Methods("GET")
	router.HandleFunc("/shapes", HandleShapes).Methods("GET")
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")
	router.HandleFunc("/midi", HandleMidi).Methods("POST")
	router.HandleFunc("/preview/{index}", HandlePreview).Methods("POST")
	router.Use(withRequestID, withRecover)

	c := cors.New(cors.Options{
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"X-Request-Id"},
	})
	return c.Handler(router)
}

func initSentry() func() {
	dsn := constants.GetSentryDSN()
	if dsn == "" {
		return func() {}
	}
	if err := sentry.Init(sentry.ClientOptions{Dsn: dsn}); err != nil {
		log.Printf("sentry disabled: %v", err)
		return func() {}
	}
	return func() { sentry.Flush(2 * time.Second) }
}

func serve(addr string) {
	flush := initSentry()
	defer flush()

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(),
		ReadHeaderTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Printf("Listening on %s", addr)
		err := srv.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatal(err)
		}
	case <-ctx.Done():
		log.Println("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	}
}
