package pairing

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
)

// ContractPath is the path the pairing operation is documented under.
const ContractPath = "/find-pairs"

// Contract returns an OpenAPI 3 description of the pairing service exchange.
// The document is rebuilt on every call so callers may mutate it.
func Contract() *openapi3.T {
	ref := openapi3.NewObjectSchema().
		WithProperty("type", openapi3.NewStringSchema()).
		WithProperty("name", openapi3.NewStringSchema()).
		WithProperty("address", openapi3.NewStringSchema())
	ref.Required = []string{"type", "name", "address"}

	pair := openapi3.NewObjectSchema().
		WithProperty("location1", ref).
		WithProperty("location2", ref).
		WithProperty("distance_text", openapi3.NewStringSchema()).
		WithProperty("duration_text", openapi3.NewStringSchema())
	pair.Required = []string{"location1", "location2", "distance_text", "duration_text"}

	request := openapi3.NewObjectSchema().
		WithProperty("region", openapi3.NewStringSchema().WithMinLength(1)).
		WithProperty("location_types", openapi3.NewArraySchema().
			WithItems(openapi3.NewStringSchema().WithMinLength(1)).
			WithMinItems(2))
	request.Required = []string{"region", "location_types"}

	failure := openapi3.NewObjectSchema().
		WithProperty("error", openapi3.NewStringSchema())

	success := openapi3.NewArraySchema().WithItems(pair)

	responses := openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Closest location pairs, possibly empty").
				WithJSONSchema(success),
		}),
		openapi3.WithStatus(http.StatusBadRequest, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Rejected request").
				WithJSONSchema(failure),
		}),
		openapi3.WithStatus(http.StatusInternalServerError, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Service failure").
				WithJSONSchema(failure),
		}),
	)

	op := &openapi3.Operation{
		OperationID: "findPairs",
		Summary:     "Find the closest pairs of locations of the requested types",
		RequestBody: &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().
				WithRequired(true).
				WithJSONSchema(request),
		},
		Responses: responses,
	}

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "Location pair finder",
			Version:     "1.0.0",
			Description: "Pairs nearby places of different types inside a region.",
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath(ContractPath, &openapi3.PathItem{Post: op}),
		),
	}
}
