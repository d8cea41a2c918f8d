package handlers

import (
	"net/http"

	intconfig "busline/internal/config"
	dbpkg "busline/internal/db"

	"github.com/gin-gonic/gin"
)

// coreTables are the tables every booking request touches.
var coreTables = []string{"account", "booking", "bus", "fare", "routetrip", "station", "ticket", "trip"}

// coreColumns are columns the queries cannot run without; older schema dumps
// predate some of them.
var coreColumns = map[string]string{
	"ticket":  "seat_code",
	"fare":    "valid_from",
	"booking": "total_amount",
	"bus":     "vehicle_type",
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func DBCheck(c *gin.Context) {
	if intconfig.DB == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database not connected"})
		return
	}
	if err := intconfig.EnsureDB(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database ping failed: " + err.Error()})
		return
	}

	missingTables := []string{}
	missingColumns := []string{}
	for _, table := range coreTables {
		if !dbpkg.HasTable(intconfig.DB, table) {
			missingTables = append(missingTables, table)
			continue
		}
		if column, ok := coreColumns[table]; ok && !dbpkg.HasColumn(intconfig.DB, table, column) {
			missingColumns = append(missingColumns, table+"."+column)
		}
	}

	payload := gin.H{"message": "database connection OK"}
	if len(missingTables) > 0 {
		payload["missing_tables"] = missingTables
	}
	if len(missingColumns) > 0 {
		payload["missing_columns"] = missingColumns
	}
	c.JSON(http.StatusOK, payload)
}
