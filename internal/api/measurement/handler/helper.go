package measurementHandler

import (
	"encoding/base64"

	"GarmentGolang/internal/entity"
	"github.com/gofiber/fiber/v2"
)

func garmentModelFromQuery(ctx *fiber.Ctx) entity.GarmentModel {
	return garmentModelFromParam(ctx.Query("model"))
}

func garmentModelFromParam(param string) entity.GarmentModel {
	if param == string(entity.ModelPro) {
		return entity.ModelPro
	}
	return entity.ModelFlash
}

func encodeFrame(frame []byte) string {
	return base64.StdEncoding.EncodeToString(frame)
}
