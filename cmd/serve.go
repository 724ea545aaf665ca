package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/jsphweid/triadex/constants"
	"github.com/jsphweid/triadex/engine"
	"github.com/jsphweid/triadex/model"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", constants.GetPort(), "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the engine over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(servePort)
	},
}

type server struct {
	engine *engine.Engine
	logger *slog.Logger
}

func NewRouter(e *engine.Engine, logger *slog.Logger) http.Handler {
	s := &server{engine: e, logger: logger}

	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/operator", s.handleGetOperator).Methods("GET")
	router.HandleFunc("/operator", s.handleSelectOperator).Methods("POST")
	router.HandleFunc("/transform", s.handleTransform).Methods("POST")
	router.HandleFunc("/identify", s.handleIdentify).Methods("POST")
	router.HandleFunc("/progression", s.handleProgression).Methods("POST")
	router.HandleFunc("/tonic/{symbol}", s.handleTonic).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(router)
}

func (s *server) handleGetOperator(w http.ResponseWriter, r *http.Request) {
	op := s.engine.Operator()
	writeJSON(w, http.StatusOK, model.OperatorResponse{Index: int(op), Operator: op.String()})
}

func (s *server) handleSelectOperator(w http.ResponseWriter, r *http.Request) {
	var input model.OperatorRequestBody
	if !s.decode(w, r, &input) {
		return
	}
	if input.Index == nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error: "Missing operator index",
			Kind:  model.FailureBadInput,
		})
		return
	}
	s.respond(w, s.engine.SelectOperator(*input.Index))
}

func (s *server) handleTransform(w http.ResponseWriter, r *http.Request) {
	var input model.NotesRequestBody
	if !s.decode(w, r, &input) {
		return
	}
	s.respond(w, s.engine.TransformTriad(input.Notes))
}

func (s *server) handleIdentify(w http.ResponseWriter, r *http.Request) {
	var input model.NotesRequestBody
	if !s.decode(w, r, &input) {
		return
	}
	s.respond(w, s.engine.IdentifyChord(input.Notes))
}

func (s *server) handleProgression(w http.ResponseWriter, r *http.Request) {
	var input model.ProgressionRequestBody
	if !s.decode(w, r, &input) {
		return
	}
	s.respond(w, s.engine.Progression(input.Notes, input.Operators))
}

func (s *server) handleTonic(w http.ResponseWriter, r *http.Request) {
	s.respond(w, s.engine.Tonic(mux.Vars(r)["symbol"]))
}

func (s *server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.logger.Debug("could not decode request body", "path", r.URL.Path, "err", err)
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{
			Error: "Could not decode request body: " + err.Error(),
			Kind:  model.FailureBadInput,
		})
		return false
	}
	return true
}

func (s *server) respond(w http.ResponseWriter, out model.Output) {
	if out.Failed() {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: out.Failure.Message, Kind: out.Failure.Kind})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func serve(port int) error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           NewRouter(eng, logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
