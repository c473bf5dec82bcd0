package routes

import (
	"github.com/gamer-hub/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupUploadRoutes(protected *gin.RouterGroup, uploadController *controllers.UploadController) {
	upload := protected.Group("/upload")
	{
		// Presigned URL generation for clip and screenshot uploads
		upload.POST("/presigned-url", uploadController.GetPresignedURL)

		// Delete uploaded file
		upload.DELETE("/file/*key", uploadController.DeleteFile)
	}
}
