package measurementService

import (
	"time"

	"GarmentGolang/internal/api/measurement"
	"GarmentGolang/internal/entity"
	contextPkg "GarmentGolang/pkg/context"
	"GarmentGolang/pkg/log"
	"golang.org/x/net/context"
)

// interRequestDelay spaces out batch calls so a batch run stays under the
// upstream rate limit. Cooperative throttling, not a hard guarantee.
const interRequestDelay = time.Second

// AnalyzeBatch runs the analyze pipeline over every image in order, one
// in-flight call at a time, validating each success. A per-image failure
// is recorded on its item and the batch continues; only context expiry
// stops the run early.
func (s *measurementService) AnalyzeBatch(ctx context.Context, images []string, model entity.GarmentModel) (*measurement.BatchResponse, error) {
	resp := &measurement.BatchResponse{
		Items: make([]measurement.BatchItem, 0, len(images)),
	}

	for i, image := range images {
		if i > 0 {
			select {
			case <-time.After(interRequestDelay):
			case <-ctx.Done():
				return resp, ctx.Err()
			}
		}

		item := measurement.BatchItem{Index: i}

		result, err := s.Analyze(ctx, image, model)
		if err != nil {
			item.Error = err.Error()
			resp.Failed++
			resp.Items = append(resp.Items, item)
			continue
		}

		validation := s.Validate(result)
		item.Result = result
		item.Validation = &validation

		if validation.Passed {
			resp.Passed++
		} else {
			resp.Failed++
		}
		resp.Items = append(resp.Items, item)
	}

	s.log.WithFields(log.Fields{
		"request_id": contextPkg.GetRequestID(ctx),
		"total":      len(images),
		"passed":     resp.Passed,
		"failed":     resp.Failed,
	}).Info("Batch measurement run finished")

	return resp, nil
}
