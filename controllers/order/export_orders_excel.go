package orderControllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

// ExportOrdersToExcel streams every order as a spreadsheet, one row per
// line item. Operator endpoint.
func ExportOrdersToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"OrderID", "UserID", "Status", "Date", "Address", "Total",
			"ItemName", "ItemKind", "UnitPrice", "Quantity",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range s.Orders() {
			for _, item := range o.Items {
				kind := "catalog"
				if item.IsCustom() {
					kind = "custom"
				}
				row := sheet.AddRow()
				row.AddCell().SetValue(o.ID)
				row.AddCell().SetValue(o.UserID)
				row.AddCell().SetValue(string(o.Status))
				row.AddCell().SetValue(o.Date.Format("2006-01-02 15:04:05"))
				row.AddCell().SetValue(o.Address)
				row.AddCell().SetValue(strconv.Itoa(o.Total))
				row.AddCell().SetValue(item.Name)
				row.AddCell().SetValue(kind)
				row.AddCell().SetValue(strconv.Itoa(item.Price))
				row.AddCell().SetValue(strconv.Itoa(item.Quantity))
			}
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
