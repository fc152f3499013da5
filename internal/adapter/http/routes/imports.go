package routes

import (
	"controlimport/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathImports = "/imports"
)

func addImportRoutes(rg *gin.RouterGroup, processHandler *handlers.ProcessHandler, ingestHandler *handlers.IngestHandler) {
	imports := rg.Group(PathImports)
	{
		imports.POST("", processHandler.CreateProcess)
		imports.GET("", processHandler.ListProcesses)
		imports.GET("/code-preview", processHandler.PreviewCode)
		imports.POST("/ingest", ingestHandler.IngestRows)
		imports.GET("/:id", processHandler.GetProcess)
		imports.PUT("/:id", processHandler.UpdateProcess)
		imports.PATCH("/:id/stage/:stage", processHandler.UpdateStage)
		imports.PATCH("/:id/void", processHandler.VoidProcess)
		imports.DELETE("/:id", processHandler.DeleteProcess)
		imports.DELETE("/:id/items/:code", processHandler.DeleteItem)
	}
}
