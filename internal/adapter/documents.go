package adapter

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pos-client/models"
)

// documentBuilder collects variable declarations and field arguments of one
// operation in insertion order.
type documentBuilder struct {
	decls []string
	args  []string
	vars  map[string]any
}

func newDocumentBuilder() *documentBuilder {
	return &documentBuilder{vars: make(map[string]any)}
}

func (b *documentBuilder) add(name, gqlType string, value any) {
	b.decls = append(b.decls, "$"+name+": "+gqlType)
	b.args = append(b.args, name+": $"+name)
	b.vars[name] = value
}

func (b *documentBuilder) addIfSet(name, gqlType, value string) {
	if value != "" {
		b.add(name, gqlType, value)
	}
}

func (b *documentBuilder) build(kind, opName, field, selection string) Operation {
	return Operation{
		Name: opName,
		Query: fmt.Sprintf("%s %s(%s) {\n  %s(%s) {\n    %s\n  }\n}",
			kind, opName, strings.Join(b.decls, ", "), field, strings.Join(b.args, ", "), selection),
		Variables: b.vars,
	}
}

// listOperation declares only the variables req sets, so list fields that
// lack an argument (variations have no date range) never receive it.
func listOperation(schema models.EntitySchema, req models.PageRequest) (Operation, error) {
	if req.Sort != nil && len(schema.SortFields) == 0 {
		return Operation{}, fmt.Errorf("%w: %s", ErrUnsupportedSort, schema.Name)
	}

	b := newDocumentBuilder()
	b.add("page", "Int!", req.Page)
	b.add("limit", "Int!", req.Limit)
	b.addIfSet("search", "String", req.Search)
	b.addIfSet("status", "String", req.Status)
	if schema.SupportsPaymentMethod {
		b.addIfSet("paymentMethod", "String", req.PaymentMethod)
	}
	if schema.SupportsDateRange {
		b.addIfSet("startDate", "String", req.StartDate)
		b.addIfSet("endDate", "String", req.EndDate)
	}
	if req.Sort != nil {
		b.add("sort", "SortInput", *req.Sort)
	}

	selection := fmt.Sprintf("data { %s }\n    total", schema.Selection)
	return b.build("query", "Get"+schema.Name+"Paginated", schema.ListField, selection), nil
}

func createOperation(schema models.EntitySchema, input any) Operation {
	b := newDocumentBuilder()
	b.add(schema.CreateArg(), schema.CreateInputType+"!", input)
	return b.build("mutation", "Create"+schema.Entity, schema.CreateField(), schema.Selection)
}

func updateOperation(schema models.EntitySchema, id int64, input any) Operation {
	b := newDocumentBuilder()
	b.add(schema.IDField, "Int!", id)
	b.add(schema.UpdateArg(), schema.UpdateInputType+"!", input)
	return b.build("mutation", "Update"+schema.Entity, schema.UpdateField(), schema.Selection)
}

func deleteOperation(schema models.EntitySchema, id int64) Operation {
	b := newDocumentBuilder()
	b.add(schema.IDField, "Int!", id)
	opName := strings.ToUpper(schema.DeleteField[:1]) + schema.DeleteField[1:]
	return b.build("mutation", opName, schema.DeleteField, schema.DeleteSelection)
}
