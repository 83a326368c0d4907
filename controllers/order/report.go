package orderControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"gorm.io/gorm"

	"github.com/day-cohort-70/Bangazon-API-team-3/httperr"
	"github.com/day-cohort-70/Bangazon-API-team-3/models"
)

type PaidOrderReport struct {
	OrderID      uint    `json:"order_id"`
	Customer     string  `json:"customer"`
	MerchantName string  `json:"merchant_name"`
	ItemCount    int     `json:"item_count"`
	Total        float64 `json:"total"`
}

func paidOrders(db *gorm.DB) ([]PaidOrderReport, *httperr.Error) {
	var orders []models.Order
	err := db.Preload("Customer").Preload("Payment").Preload("LineItems.Product").
		Where("state = ?", models.OrderStateCompleted).
		Order("id").
		Find(&orders).Error
	if err != nil {
		return nil, httperr.Unavailable("failed to load completed orders", err)
	}

	reports := make([]PaidOrderReport, 0, len(orders))
	for _, order := range orders {
		var total float64
		for _, item := range order.LineItems {
			total += item.Product.Price * float64(item.Quantity)
		}
		report := PaidOrderReport{
			OrderID:   order.ID,
			Customer:  order.Customer.FirstName + " " + order.Customer.LastName,
			ItemCount: len(order.LineItems),
			Total:     total,
		}
		if order.Payment != nil {
			report.MerchantName = order.Payment.MerchantName
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// GET /reports/orders?status=complete
func PaidOrdersReport(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Query("status") != "complete" {
			httperr.Respond(c, httperr.InvalidArgument("Invalid status parameter"))
			return
		}

		reports, appErr := paidOrders(db)
		if appErr != nil {
			httperr.Respond(c, appErr)
			return
		}
		c.JSON(http.StatusOK, reports)
	}
}

// GET /reports/orders/export
func ExportPaidOrdersToExcel(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		reports, appErr := paidOrders(db)
		if appErr != nil {
			httperr.Respond(c, appErr)
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Paid Orders")
		if err != nil {
			httperr.Respond(c, httperr.Internal("failed to create Excel sheet", err))
			return
		}

		headerRow := sheet.AddRow()
		for _, h := range []string{"OrderID", "Customer", "Merchant", "Items", "Total"} {
			headerRow.AddCell().SetValue(h)
		}

		for _, r := range reports {
			row := sheet.AddRow()
			row.AddCell().SetValue(r.OrderID)
			row.AddCell().SetValue(r.Customer)
			row.AddCell().SetValue(r.MerchantName)
			row.AddCell().SetValue(r.ItemCount)
			row.AddCell().SetValue(r.Total)
		}

		c.Header("Content-Disposition", "attachment; filename=paid_orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")

		if err := file.Write(c.Writer); err != nil {
			httperr.Respond(c, httperr.Internal("failed to write Excel file", err))
			return
		}
	}
}
