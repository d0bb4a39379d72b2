package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/commands"
	"github.com/young8Programmer/NexusLogistics/internal/core/application/usecases/queries"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/driver"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/kernel"
	"github.com/young8Programmer/NexusLogistics/internal/core/domain/model/ledger"
	"github.com/young8Programmer/NexusLogistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

type createDriverRequest struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	LicenseNumber string `json:"licenseNumber"`
	PhoneNumber   string `json:"phoneNumber"`
	Email         string `json:"email"`
	VehicleType   string `json:"vehicleType"`
	VehicleNumber string `json:"vehicleNumber"`
}

type updateDriverRequest struct {
	PhoneNumber   *string `json:"phoneNumber"`
	Email         *string `json:"email"`
	VehicleType   *string `json:"vehicleType"`
	VehicleNumber *string `json:"vehicleNumber"`
	Status        *string `json:"status"`
	IsActive      *bool   `json:"isActive"`
}

type createTransactionRequest struct {
	DriverID    string          `json:"driverId"`
	ShipmentID  string          `json:"shipmentId"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

type driverBalanceResponse struct {
	DriverID      string          `json:"driverId"`
	Balance       decimal.Decimal `json:"balance"`
	TotalEarnings decimal.Decimal `json:"totalEarnings"`
	TotalExpenses decimal.Decimal `json:"totalExpenses"`
}

type transactionResponse struct {
	ID            string          `json:"id"`
	DriverID      string          `json:"driverId"`
	ShipmentID    *string         `json:"shipmentId"`
	Type          string          `json:"type"`
	Status        string          `json:"status"`
	Amount        decimal.Decimal `json:"amount"`
	BalanceBefore decimal.Decimal `json:"balanceBefore"`
	BalanceAfter  decimal.Decimal `json:"balanceAfter"`
	Description   string          `json:"description"`
	Reference     string          `json:"reference"`
	CreatedAt     time.Time       `json:"createdAt"`
}

func (s *Server) handleCreateDriver(ctx echo.Context) error {
	var req createDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	driverID := kernel.NewUUID()

	cmd, err := commands.NewCreateDriverCommand(
		driverID, req.FirstName, req.LastName, req.LicenseNumber, req.PhoneNumber)
	if err != nil {
		return respondError(ctx, err)
	}
	cmd.SetContact(req.Email)
	cmd.SetVehicle(req.VehicleType, req.VehicleNumber)

	if err := s.commands.CreateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, idResponse{ID: driverID.String()})
}

func (s *Server) handleUpdateDriver(ctx echo.Context) error {
	driverID, err := parseUUIDParam(ctx, "driverId")
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateDriverRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var statusFilter *driver.Status
	if req.Status != nil {
		status, parseErr := driver.ParseStatus(*req.Status)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		statusFilter = &status
	}

	cmd, err := commands.NewUpdateDriverCommand(driverID)
	if err != nil {
		return respondError(ctx, err)
	}
	cmd.SetContact(req.PhoneNumber, req.Email)
	cmd.SetVehicle(req.VehicleType, req.VehicleNumber)
	cmd.SetStatus(statusFilter)
	cmd.SetActive(req.IsActive)

	if err := s.commands.UpdateDriver.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) handleCreateTransaction(ctx echo.Context) error {
	var req createTransactionRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	driverID, err := parseRequiredUUID(req.DriverID, "driverId")
	if err != nil {
		return respondError(ctx, err)
	}
	shipmentID, err := parseOptionalUUID(req.ShipmentID, "shipmentId")
	if err != nil {
		return respondError(ctx, err)
	}
	transactionType, err := ledger.ParseTransactionType(req.Type)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateTransactionCommand(
		driverID, shipmentID, transactionType, req.Amount, req.Description)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.commands.CreateTransaction.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

func (s *Server) handleGetDriverBalance(ctx echo.Context) error {
	driverID, err := parseUUIDParam(ctx, "driverId")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetDriverBalanceQuery(driverID)
	if err != nil {
		return respondError(ctx, err)
	}

	balance, err := s.queries.GetDriverBalance.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, driverBalanceResponse{
		DriverID:      balance.DriverID.String(),
		Balance:       balance.Balance,
		TotalEarnings: balance.TotalEarnings,
		TotalExpenses: balance.TotalExpenses,
	})
}

func (s *Server) handleGetDriverTransactions(ctx echo.Context) error {
	driverID, err := parseUUIDParam(ctx, "driverId")
	if err != nil {
		return respondError(ctx, err)
	}

	var typeFilter *ledger.TransactionType
	if raw := ctx.QueryParam("type"); raw != "" {
		transactionType, parseErr := ledger.ParseTransactionType(raw)
		if parseErr != nil {
			return respondError(ctx, parseErr)
		}
		typeFilter = &transactionType
	}

	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil {
			return respondError(ctx, errs.NewValueIsInvalidErrorWithCause("limit", err))
		}
	}

	query, err := queries.NewGetDriverTransactionsQuery(driverID, typeFilter, limit)
	if err != nil {
		return respondError(ctx, err)
	}

	transactions, err := s.queries.GetDriverTransactions.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]transactionResponse, len(transactions))
	for i, tx := range transactions {
		response[i] = transactionResponse{
			ID:            tx.ID.String(),
			DriverID:      tx.DriverID.String(),
			ShipmentID:    optionalUUIDString(tx.ShipmentID),
			Type:          tx.Type.String(),
			Status:        tx.Status.String(),
			Amount:        tx.Amount,
			BalanceBefore: tx.BalanceBefore,
			BalanceAfter:  tx.BalanceAfter,
			Description:   tx.Description,
			Reference:     tx.Reference,
			CreatedAt:     tx.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
