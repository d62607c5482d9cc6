package controllers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/eprocurement-ocds/revision/modules/revision/domain/fail"
	"github.com/eprocurement-ocds/revision/modules/revision/presentation/dto"
	"github.com/eprocurement-ocds/revision/modules/revision/services"
	"github.com/eprocurement-ocds/revision/pkg/composables"
	"github.com/eprocurement-ocds/revision/pkg/configuration"
	"github.com/eprocurement-ocds/revision/pkg/metrics"
	"github.com/eprocurement-ocds/revision/pkg/middleware"
)

const maxBodySize = 1 << 20

// CommandController serves the platform command endpoint. Every operation
// arrives as POST /command with an envelope naming the action; the HTTP
// status is always 200 and the outcome travels in the response status field.
type CommandController struct {
	amendmentService *services.AmendmentService
	service          configuration.ServiceOptions
}

func NewCommandController(amendmentService *services.AmendmentService, service configuration.ServiceOptions) *CommandController {
	return &CommandController{
		amendmentService: amendmentService,
		service:          service,
	}
}

func (c *CommandController) Key() string {
	return "/command"
}

func (c *CommandController) Register(r *mux.Router) {
	router := r.PathPrefix("/command").Subrouter()
	router.Use(middleware.WithTransaction())
	router.HandleFunc("", c.Handle).Methods(http.MethodPost)
}

func (c *CommandController) Handle(w http.ResponseWriter, r *http.Request) {
	started := time.Now()

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		c.respondFailure(w, r, dto.Command{}, fail.BadRequest{Message: "Invalid request body."})
		metrics.RecordCommand("unknown", "error", time.Since(started).Seconds())
		return
	}

	cmd, err := dto.ParseCommand(body)
	if err != nil {
		c.respondFailure(w, r, cmd, err)
		metrics.RecordCommand("unknown", "error", time.Since(started).Seconds())
		return
	}

	logger := composables.UseLogger(r.Context()).WithFields(map[string]any{
		"command-id": cmd.ID,
		"action":     cmd.Action,
	})
	ctx := composables.WithLogger(r.Context(), logger)
	r = r.WithContext(ctx)

	status := "success"
	switch cmd.Action {
	case dto.ActionCreateAmendment:
		status = c.handleCreateAmendment(w, r, cmd)
	case dto.ActionGetAmendmentIDs:
		status = c.handleGetAmendmentIDs(w, r, cmd)
	case dto.ActionDataValidation:
		status = c.handleDataValidation(w, r, cmd)
	default:
		status = "error"
		c.respondFailure(w, r, cmd, fail.BadRequest{
			Message: fmt.Sprintf("Unknown action '%s'.", cmd.Action),
		})
	}
	metrics.RecordCommand(cmd.Action, status, time.Since(started).Seconds())
}

func (c *CommandController) handleCreateAmendment(w http.ResponseWriter, r *http.Request, cmd dto.Command) string {
	var request dto.CreateAmendmentRequest
	if err := dto.DecodeParams(cmd.Params, &request); err != nil {
		return c.respondFailure(w, r, cmd, err)
	}

	params, err := amendmentCreateParams(request)
	if err != nil {
		return c.respondFailure(w, r, cmd, err)
	}

	created, err := c.amendmentService.CreateAmendment(r.Context(), params)
	if err != nil {
		return c.respondFailure(w, r, cmd, err)
	}

	writeJSON(w, r, dto.NewSuccessResponse(cmd.Version, cmd.ID, dto.NewCreateAmendmentResult(created)))
	return "success"
}

func (c *CommandController) handleGetAmendmentIDs(w http.ResponseWriter, r *http.Request, cmd dto.Command) string {
	var request dto.GetAmendmentIDsRequest
	if err := dto.DecodeParams(cmd.Params, &request); err != nil {
		return c.respondFailure(w, r, cmd, err)
	}

	params, err := amendmentGetIDsParams(request)
	if err != nil {
		return c.respondFailure(w, r, cmd, err)
	}

	ids, err := c.amendmentService.GetAmendmentIDsBy(r.Context(), params)
	if err != nil {
		return c.respondFailure(w, r, cmd, err)
	}

	writeJSON(w, r, dto.NewSuccessResponse(cmd.Version, cmd.ID, dto.NewGetAmendmentIDsResult(ids)))
	return "success"
}

func (c *CommandController) handleDataValidation(w http.ResponseWriter, r *http.Request, cmd dto.Command) string {
	var request dto.DataValidationRequest
	if err := dto.DecodeParams(cmd.Params, &request); err != nil {
		return c.respondFailure(w, r, cmd, err)
	}

	params, err := amendmentDataValidationParams(request)
	if err != nil {
		return c.respondFailure(w, r, cmd, err)
	}

	if err := c.amendmentService.ValidateDocumentsTypes(r.Context(), params); err != nil {
		return c.respondFailure(w, r, cmd, err)
	}

	writeJSON(w, r, dto.NewSuccessResponse(cmd.Version, cmd.ID, nil))
	return "success"
}

// respondFailure maps a failure onto the envelope contract. Data and
// validation failures become error responses; incidents and unclassified
// errors become incident responses logged with a generated incident id.
// Returns the metrics status label.
func (c *CommandController) respondFailure(w http.ResponseWriter, r *http.Request, cmd dto.Command, err error) string {
	version := cmd.Version
	if version == "" {
		version = c.service.Version
	}
	id := cmd.ID
	if id == "" {
		id = uuid.Nil.String()
	}

	f, ok := fail.AsFail(err)
	if !ok {
		f = fail.NewInternalIncident(err)
	}

	if incident, isIncident := fail.AsIncident(f); isIncident {
		incidentID := uuid.New()
		composables.UseLogger(r.Context()).
			WithError(incident).
			WithField("incident-id", incidentID.String()).
			Error("command failed with incident")
		writeJSON(w, r, dto.NewIncidentResponse(version, id, incidentID, incident, c.service))
		return "incident"
	}

	writeJSON(w, r, dto.NewErrorResponse(version, id, f, c.service))
	return "error"
}
