package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"workorders/internal/core/application/usecases/commands"
	"workorders/internal/core/application/usecases/queries"
	"workorders/internal/core/domain/model/workorder"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/oapi-codegen/runtime"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// APIPrefix is the mount point of the versioned API.
const APIPrefix = "/api/v1"

type (
	CreateWorkOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateWorkOrderCommand) (*workorder.WorkOrder, error)
	}
	UpdateWorkOrderHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateWorkOrderCommand) (*workorder.WorkOrder, error)
	}
	ReorderWorkOrdersHandler interface {
		Handle(ctx context.Context, cmd commands.ReorderWorkOrdersCommand) error
	}
	DeleteWorkOrderHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteWorkOrderCommand) (bool, error)
	}
	SendCustomerSummaryHandler interface {
		Handle(ctx context.Context, cmd commands.SendCustomerSummaryCommand) error
	}
	ListWorkOrdersHandler interface {
		Handle(ctx context.Context, q queries.ListWorkOrdersQuery) ([]*workorder.WorkOrder, error)
	}
	GetWorkOrderHandler interface {
		Handle(ctx context.Context, q queries.GetWorkOrderQuery) (*workorder.WorkOrder, error)
	}
	ListTechniciansHandler interface {
		Handle(ctx context.Context, q queries.ListTechniciansQuery) ([]queries.ListTechniciansQueryResponse, error)
	}
	GetStateDistributionHandler interface {
		Handle(ctx context.Context, q queries.GetStateDistributionQuery) ([]queries.GetStateDistributionQueryResponse, error)
	}
)

// Handlers groups the use cases exposed over HTTP.
type Handlers struct {
	CreateWorkOrder     CreateWorkOrderHandler
	UpdateWorkOrder     UpdateWorkOrderHandler
	ReorderWorkOrders   ReorderWorkOrdersHandler
	DeleteWorkOrder     DeleteWorkOrderHandler
	SendCustomerSummary SendCustomerSummaryHandler

	ListWorkOrders       ListWorkOrdersHandler
	GetWorkOrder         GetWorkOrderHandler
	ListTechnicians      ListTechniciansHandler
	GetStateDistribution GetStateDistributionHandler
}

// Server translates HTTP requests into use-case calls.
type Server struct {
	handlers Handlers
	auth     *Authenticator
	logger   *slog.Logger
}

func NewServer(handlers Handlers, auth *Authenticator, logger *slog.Logger) *Server {
	return &Server{
		handlers: handlers,
		auth:     auth,
		logger:   logger.With("component", "http_server"),
	}
}

// NewEcho builds the echo instance with middleware, API routes, the health
// probe and the swagger UI.
func (s *Server) NewEcho(ctx context.Context) (*echo.Echo, error) {
	doc, err := LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}
	if err := registerSwagger(doc); err != nil {
		return nil, err
	}
	validate, err := requestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(requestID())
	e.Use(requestLogger(s.logger))

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(APIPrefix, s.auth.Middleware(), validate)
	s.RegisterRoutes(api)

	return e, nil
}

// RegisterRoutes mounts the work-order routes on g. Static segments are
// registered before /:id so that they are not parsed as ids.
func (s *Server) RegisterRoutes(g *echo.Group) {
	g.GET("/work-orders", s.ListWorkOrders)
	g.POST("/work-orders", s.CreateWorkOrder)
	g.PUT("/work-orders/order", s.ReorderWorkOrders)
	g.GET("/work-orders/states", s.GetStateDistribution)
	g.GET("/work-orders/:id", s.GetWorkOrder)
	g.PATCH("/work-orders/:id", s.UpdateWorkOrder)
	g.PUT("/work-orders/:id", s.UpdateWorkOrder)
	g.DELETE("/work-orders/:id", s.DeleteWorkOrder)
	g.POST("/work-orders/:id/customer-summary", s.SendCustomerSummary)
	g.GET("/technicians", s.ListTechnicians)
}

// ListWorkOrders handles GET /api/v1/work-orders.
func (s *Server) ListWorkOrders(c echo.Context) error {
	caller, ok := CallerFromContext(c.Request().Context())
	if !ok {
		return unauthorized(c)
	}

	var technician *string
	if err := runtime.BindQueryParameter("form", true, false, "technician", c.QueryParams(), &technician); err != nil {
		return badRequest(c, "Invalid format for parameter technician: "+err.Error())
	}

	requested := ""
	if technician != nil {
		requested = *technician
	}
	query, err := queries.NewListWorkOrdersQuery(caller, requested)
	if err != nil {
		return s.writeError(c, err)
	}

	board, err := s.handlers.ListWorkOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toWorkOrders(board))
}

// GetWorkOrder handles GET /api/v1/work-orders/:id.
func (s *Server) GetWorkOrder(c echo.Context) error {
	caller, ok := CallerFromContext(c.Request().Context())
	if !ok {
		return unauthorized(c)
	}
	id, err := bindID(c)
	if err != nil {
		return badRequest(c, "Invalid format for parameter id: "+err.Error())
	}

	query, err := queries.NewGetWorkOrderQuery(caller, id)
	if err != nil {
		return s.writeError(c, err)
	}

	wo, err := s.handlers.GetWorkOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toWorkOrder(wo))
}

// CreateWorkOrder handles POST /api/v1/work-orders.
func (s *Server) CreateWorkOrder(c echo.Context) error {
	caller, ok := CallerFromContext(c.Request().Context())
	if !ok {
		return unauthorized(c)
	}

	var body NewWorkOrder
	if err := decodeBody(c, &body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewCreateWorkOrderCommand(caller, body.Number, body.AssignedTechnician, body.details())
	if err != nil {
		return s.writeError(c, err)
	}

	wo, err := s.handlers.CreateWorkOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusCreated, toWorkOrder(wo))
}

// UpdateWorkOrder handles PATCH and PUT /api/v1/work-orders/:id. Both verbs
// merge the payload onto the stored record.
func (s *Server) UpdateWorkOrder(c echo.Context) error {
	caller, ok := CallerFromContext(c.Request().Context())
	if !ok {
		return unauthorized(c)
	}
	id, err := bindID(c)
	if err != nil {
		return badRequest(c, "Invalid format for parameter id: "+err.Error())
	}

	var body WorkOrderPatch
	if err := decodeBody(c, &body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	cmd, err := commands.NewUpdateWorkOrderCommand(caller, id, body.toDomain())
	if err != nil {
		return s.writeError(c, err)
	}

	wo, err := s.handlers.UpdateWorkOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toWorkOrder(wo))
}

// ReorderWorkOrders handles PUT /api/v1/work-orders/order.
func (s *Server) ReorderWorkOrders(c echo.Context) error {
	caller, ok := CallerFromContext(c.Request().Context())
	if !ok {
		return unauthorized(c)
	}

	var body ReorderRequest
	if err := decodeBody(c, &body); err != nil {
		return badRequest(c, "Invalid request body")
	}

	moves, err := toMoves(body.Updates)
	if err != nil {
		return s.writeError(c, err)
	}
	cmd, err := commands.NewReorderWorkOrdersCommand(caller, moves)
	if err != nil {
		return s.writeError(c, err)
	}

	if err := s.handlers.ReorderWorkOrders.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// DeleteWorkOrder handles DELETE /api/v1/work-orders/:id.
func (s *Server) DeleteWorkOrder(c echo.Context) error {
	caller, ok := CallerFromContext(c.Request().Context())
	if !ok {
		return unauthorized(c)
	}
	id, err := bindID(c)
	if err != nil {
		return badRequest(c, "Invalid format for parameter id: "+err.Error())
	}

	cmd, err := commands.NewDeleteWorkOrderCommand(caller, id)
	if err != nil {
		return s.writeError(c, err)
	}

	existed, err := s.handlers.DeleteWorkOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.writeError(c, err)
	}
	if !existed {
		return c.JSON(http.StatusNotFound, Error{Code: http.StatusNotFound, Message: "Work order not found"})
	}
	return c.NoContent(http.StatusNoContent)
}

// SendCustomerSummary handles POST /api/v1/work-orders/:id/customer-summary.
func (s *Server) SendCustomerSummary(c echo.Context) error {
	caller, ok := CallerFromContext(c.Request().Context())
	if !ok {
		return unauthorized(c)
	}
	id, err := bindID(c)
	if err != nil {
		return badRequest(c, "Invalid format for parameter id: "+err.Error())
	}

	cmd, err := commands.NewSendCustomerSummaryCommand(caller, id)
	if err != nil {
		return s.writeError(c, err)
	}

	if err := s.handlers.SendCustomerSummary.Handle(c.Request().Context(), cmd); err != nil {
		return s.writeError(c, err)
	}
	return c.NoContent(http.StatusAccepted)
}

// ListTechnicians handles GET /api/v1/technicians.
func (s *Server) ListTechnicians(c echo.Context) error {
	caller, ok := CallerFromContext(c.Request().Context())
	if !ok {
		return unauthorized(c)
	}

	query, err := queries.NewListTechniciansQuery(caller)
	if err != nil {
		return s.writeError(c, err)
	}

	technicians, err := s.handlers.ListTechnicians.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toTechnicians(technicians))
}

// GetStateDistribution handles GET /api/v1/work-orders/states.
func (s *Server) GetStateDistribution(c echo.Context) error {
	caller, ok := CallerFromContext(c.Request().Context())
	if !ok {
		return unauthorized(c)
	}

	query, err := queries.NewGetStateDistributionQuery(caller)
	if err != nil {
		return s.writeError(c, err)
	}

	rows, err := s.handlers.GetStateDistribution.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err)
	}
	return c.JSON(http.StatusOK, toStateCounts(rows))
}

func bindID(c echo.Context) (int64, error) {
	var id int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	return id, err
}

func decodeBody(c echo.Context, dst any) error {
	return json.NewDecoder(c.Request().Body).Decode(dst)
}
