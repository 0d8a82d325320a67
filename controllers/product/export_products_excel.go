package productcontroller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"

	"github.com/Equatrans/MicroGreen-Labs-App/store"
)

// ExportProductsToExcel streams the whole catalog as a spreadsheet for the
// operator.
func ExportProductsToExcel(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Products")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Name", "Category", "Price", "OldPrice", "IsHit",
			"Difficulty", "GrowthTime", "Variants", "EquipmentIDs", "Description",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, p := range s.Products() {
			variants := make([]string, 0, len(p.Variants))
			for _, v := range p.Variants {
				variants = append(variants, v.Name+" ("+strconv.Itoa(v.Price)+")")
			}

			row := sheet.AddRow()
			row.AddCell().SetValue(p.ID)
			row.AddCell().SetValue(p.Name)
			row.AddCell().SetValue(string(p.Category))
			row.AddCell().SetValue(strconv.Itoa(p.Price))
			row.AddCell().SetValue(strconv.Itoa(p.OldPrice))
			row.AddCell().SetValue(strconv.FormatBool(p.IsHit))
			row.AddCell().SetValue(p.Difficulty)
			row.AddCell().SetValue(p.GrowthTime)
			row.AddCell().SetValue(strings.Join(variants, "; "))
			row.AddCell().SetValue(strings.Join(p.EquipmentIDs, ", "))
			row.AddCell().SetValue(p.Description)
		}

		c.Header("Content-Disposition", "attachment; filename=products.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
