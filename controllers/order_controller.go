package controllers

import (
	"encoding/json"
	"sort"
	"strconv"
	"time"

	"littlelemon/pkg/resp"
	"littlelemon/repository"
	"littlelemon/services"
	"littlelemon/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// POST /api/orders
func (oc *OrderController) Checkout(c *gin.Context) {
	o, err := oc.Svc.Checkout(utils.CurrentUserID(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, o)
}

// GET /api/orders?status=&date=YYYY-MM-DD&page=&perpage=
func (oc *OrderController) List(c *gin.Context) {
	f := repository.OrderFilter{
		Status:  c.Query("status"),
		Page:    queryInt(c, "page"),
		PerPage: queryInt(c, "perpage"),
	}
	if v := c.Query("date"); v != "" {
		d, err := time.Parse(time.DateOnly, v)
		if err != nil {
			resp.BadRequest(c, "date must be YYYY-MM-DD")
			return
		}
		f.Date = &d
	}
	page, err := oc.Svc.VisibleOrders(utils.CurrentUserID(c), f)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, page)
}

// GET /api/orders/:id
func (oc *OrderController) Detail(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.NotFound(c, "order not found")
		return
	}
	o, err := oc.Svc.GetVisibleOrder(utils.CurrentUserID(c), id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, o)
}

// PUT|PATCH /api/orders/:id
func (oc *OrderController) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		resp.NotFound(c, "order not found")
		return
	}
	var body map[string]json.RawMessage
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	in, err := parseOrderUpdate(body)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	o, err := oc.Svc.UpdateOrder(id, utils.CurrentUserID(c), in)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, o)
}

// parseOrderUpdate keeps status as free text (a JSON string, or the literal
// text of any other JSON value) and delivery_crew as a user id.
func parseOrderUpdate(body map[string]json.RawMessage) (services.OrderUpdate, error) {
	var in services.OrderUpdate
	for key, raw := range body {
		switch key {
		case "status":
			if string(raw) == "null" {
				in.Unknown = append(in.Unknown, key)
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err != nil {
				s = string(raw)
			}
			in.Status = &s
		case "delivery_crew":
			if string(raw) == "null" {
				in.Unknown = append(in.Unknown, key)
				continue
			}
			id, err := parseUserID(raw)
			if err != nil {
				return in, err
			}
			in.DeliveryCrewID = &id
		default:
			in.Unknown = append(in.Unknown, key)
		}
	}
	sort.Strings(in.Unknown)
	return in, nil
}

// parseUserID accepts 7 or "7".
func parseUserID(raw json.RawMessage) (uint, error) {
	var n uint
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return 0, services.ErrInvalidInput
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, services.ErrInvalidInput
	}
	return uint(v), nil
}
