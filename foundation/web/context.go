package web

import (
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Context carries request-scoped values across the handler chain. Ctx is the
// context claims and deadlines travel on; Writer/Request expose the raw
// http primitives for streaming responses (files, pdf, sse).
type Context struct {
	*gin.Context

	Ctx     context.Context
	Request *http.Request
	Writer  gin.ResponseWriter

	queryErrs []error
	paramErrs []error
}

func NewContext(c *gin.Context) *Context {
	return &Context{
		Context: c,
		Ctx:     c.Request.Context(),
		Request: c.Request,
		Writer:  c.Writer,
	}
}

// GetQueryFunc parses an optional query parameter into a typed pointer.
// A missing parameter yields an untyped nil so callers can use the
// `if v, ok := c.GetQueryFunc(reflect.Int, "limit").(*int); ok` form.
// Parse failures are collected and surfaced by ValidQuery.
func (c *Context) GetQueryFunc(kind reflect.Kind, name string) interface{} {
	value, ok := c.GetQuery(name)
	if !ok || value == "" {
		return nil
	}

	switch kind {
	case reflect.Int:
		v, err := strconv.Atoi(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, errors.Wrapf(err, "parsing query %q", name))
			return nil
		}
		return &v
	case reflect.Bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			c.queryErrs = append(c.queryErrs, errors.Wrapf(err, "parsing query %q", name))
			return nil
		}
		return &v
	case reflect.Float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			c.queryErrs = append(c.queryErrs, errors.Wrapf(err, "parsing query %q", name))
			return nil
		}
		return &v
	case reflect.String:
		return &value
	}

	c.queryErrs = append(c.queryErrs, errors.Errorf("unsupported query kind for %q", name))
	return nil
}

// GetParam parses a required path parameter. The zero value is returned on
// failure and the error is surfaced by ValidParam.
func (c *Context) GetParam(kind reflect.Kind, name string) interface{} {
	value := c.Param(name)

	switch kind {
	case reflect.Int:
		v, err := strconv.Atoi(value)
		if err != nil {
			c.paramErrs = append(c.paramErrs, errors.Wrapf(err, "parsing param %q", name))
			return 0
		}
		return v
	case reflect.String:
		if value == "" {
			c.paramErrs = append(c.paramErrs, errors.Errorf("missing param %q", name))
		}
		return value
	}

	c.paramErrs = append(c.paramErrs, errors.Errorf("unsupported param kind for %q", name))
	return nil
}

// ValidQuery reports the first query parse failure, if any.
func (c *Context) ValidQuery() error {
	if len(c.queryErrs) > 0 {
		return NewRequestError(c.queryErrs[0], http.StatusBadRequest)
	}
	return nil
}

// ValidParam reports the first path-param parse failure, if any.
func (c *Context) ValidParam() error {
	if len(c.paramErrs) > 0 {
		return NewRequestError(c.paramErrs[0], http.StatusBadRequest)
	}
	return nil
}

// BindFunc binds the request body (json or form, including multipart) into
// data and verifies the listed struct fields were provided.
func (c *Context) BindFunc(data interface{}, requiredFields ...string) error {
	if err := c.ShouldBind(data); err != nil {
		return NewRequestError(errors.Wrap(err, "binding request"), http.StatusBadRequest)
	}

	if len(requiredFields) > 0 {
		if err := checkRequired(data, requiredFields); err != nil {
			return NewRequestError(err, http.StatusBadRequest)
		}
	}

	return nil
}

func checkRequired(data interface{}, fields []string) error {
	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return errors.New("binding nil request")
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}

	var missing []string
	for _, name := range fields {
		// Callers occasionally pass "A,B" as one element.
		for _, field := range strings.Split(name, ",") {
			field = strings.TrimSpace(field)
			f := v.FieldByName(field)
			if !f.IsValid() {
				continue
			}
			if f.Kind() == reflect.Ptr && f.IsNil() {
				missing = append(missing, field)
				continue
			}
			if f.IsZero() {
				missing = append(missing, field)
			}
		}
	}

	if len(missing) > 0 {
		return errors.Errorf("required fields are missing: %s", strings.Join(missing, ", "))
	}

	return nil
}

// Respond converts a Go value to JSON and sends it to the client.
func (c *Context) Respond(data interface{}, statusCode int) error {
	c.JSON(statusCode, data)
	return nil
}

// RespondError sends an error response back to the client, mapping *web.Error
// to its status and hiding everything else behind a 500.
func (c *Context) RespondError(err error) error {
	if webErr := GetRequestError(err); webErr != nil {
		c.JSON(webErr.Status, map[string]interface{}{
			"error":  fmt.Sprintf("%v", webErr.Err),
			"status": false,
		})
		return nil
	}

	c.JSON(http.StatusInternalServerError, map[string]interface{}{
		"error":  err.Error(),
		"status": false,
	})

	return nil
}
