package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/shipping-optimizer/internal/domain/dto"
	"github.com/guttosm/shipping-optimizer/internal/domain/model"
	"github.com/guttosm/shipping-optimizer/internal/metrics"
	"github.com/guttosm/shipping-optimizer/internal/optimizer"
	"github.com/guttosm/shipping-optimizer/internal/rate"
)

// Handler provides HTTP handlers for the optimize and quote routes.
type Handler struct {
	optimizer *optimizer.Optimizer
	quoter    rate.Provider
	// quoterName labels rate metrics.
	quoterName string
	dimDivisor float64
}

// NewHandler creates a new Handler instance.
func NewHandler(opt *optimizer.Optimizer, quoter rate.Provider, quoterName string, dimDivisor float64) *Handler {
	if dimDivisor <= 0 {
		dimDivisor = optimizer.DefaultDimDivisor
	}
	return &Handler{
		optimizer:  opt,
		quoter:     quoter,
		quoterName: quoterName,
		dimDivisor: dimDivisor,
	}
}

// OptimizeShipment handles POST /api/optimize requests.
//
// @Summary      Compute a shipment packing plan
// @Description  Packs the requested products into boxes from the catalog (or the request's own box list), choosing box types, item orientations and 3D positions to minimize a weighted cost of money, wasted volume and dimensional weight.
// @Tags         Shipments
// @Accept       json
// @Produce      json
// @Param        request body dto.OptimizeRequest true "Products, optional boxes and options"
// @Success      200 {object} dto.SuccessResponse "Shipment plan"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      422 {object} dto.ErrorResponse "No box can hold an item"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/optimize [post]
func (h *Handler) OptimizeShipment(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.OptimizeRequest](c)
	if err != nil {
		var verr *dto.ValidationError
		if errors.As(err, &verr) {
			metrics.RecordOptimization(0, "validation_error", 0, 0)
			builder.Error(http.StatusBadRequest, verr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, "invalid request body", err)
		}
		return
	}

	start := time.Now()
	plan, err := h.optimizer.OptimizeWithCatalog(req.Items(), req.Catalog(), req.Options.ToPlanOptions())
	duration := time.Since(start)

	if err != nil {
		var uerr *optimizer.UnpackableError
		if errors.As(err, &uerr) {
			metrics.RecordOptimization(duration, "unpackable", 0, 0)
			builder.Error(http.StatusUnprocessableEntity, uerr.Error(), err)
			return
		}
		metrics.RecordOptimization(duration, "error", 0, 0)
		builder.Error(http.StatusInternalServerError, "optimization failed", err)
		return
	}

	metrics.RecordOptimization(duration, "success", plan.Summary.TotalBoxes, avgVoidRatio(plan))
	builder.SuccessOK(plan)
}

// QuoteRates handles POST /api/quotes requests.
//
// @Summary      Quote carrier rates for packed boxes
// @Description  Returns carrier rate quotes for an already-packed box list, using the configured provider (static table or EasyPost).
// @Tags         Rates
// @Accept       json
// @Produce      json
// @Param        request body dto.QuoteRequest true "Boxes and destination"
// @Success      200 {object} dto.SuccessResponse "Rate quotes"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Failure      502 {object} dto.ErrorResponse "Rate provider failure"
// @Router       /api/quotes [post]
func (h *Handler) QuoteRates(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequest[dto.QuoteRequest](c)
	if err != nil {
		var verr *dto.ValidationError
		if errors.As(err, &verr) {
			builder.Error(http.StatusBadRequest, verr.Error(), err)
		} else {
			builder.Error(http.StatusBadRequest, "invalid request body", err)
		}
		return
	}

	quotes, err := h.quoter.Quote(c.Request.Context(), req.Packings(h.dimDivisor), req.Destination)
	if err != nil {
		metrics.RecordRateQuote(h.quoterName, "error")
		builder.Error(http.StatusBadGateway, "rate provider failed", err)
		return
	}

	metrics.RecordRateQuote(h.quoterName, "success")
	builder.SuccessOK(quotes)
}

func avgVoidRatio(plan *model.ShipmentPlan) float64 {
	if len(plan.Shipments) == 0 {
		return 0
	}
	var sum float64
	for _, s := range plan.Shipments {
		sum += s.VoidRatio
	}
	return sum / float64(len(plan.Shipments))
}
