package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/muebleria/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupValidator(t *testing.T) {
	SetupValidator()

	v, ok := binding.Validator.Engine().(*validator.Validate)
	assert.True(t, ok)
	assert.NotNil(t, v)
}

func TestFormatValidationErrors(t *testing.T) {
	type input struct {
		SellerID string `json:"seller_id" binding:"required,uuid"`
		Quantity int    `json:"quantity" binding:"required,gt=0"`
	}

	SetupValidator()

	engine := gin.New()
	engine.POST("/sales", func(c *gin.Context) {
		var req input
		if err := c.ShouldBindJSON(&req); err != nil {
			HandleValidationError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
	})

	t.Run("reports field names from json tags", func(t *testing.T) {
		body := strings.NewReader(`{"seller_id": "not-a-uuid", "quantity": 0}`)
		req := httptest.NewRequest(http.MethodPost, "/sales", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)

		var resp dto.Response
		err := json.Unmarshal(w.Body.Bytes(), &resp)
		require.NoError(t, err)

		assert.False(t, resp.Success)
		assert.Equal(t, dto.ErrCodeBadRequest, resp.Error.Code)
		assert.Equal(t, "Request validation failed", resp.Error.Message)
		require.Len(t, resp.Error.Details, 2)

		fields := []string{resp.Error.Details[0].Field, resp.Error.Details[1].Field}
		assert.Contains(t, fields, "seller_id")
		assert.Contains(t, fields, "quantity")
	})

	t.Run("passes valid input through", func(t *testing.T) {
		body := strings.NewReader(`{"seller_id": "b2f7c0d4-3a9e-4a61-9a53-0b9f2f2c1a77", "quantity": 3}`)
		req := httptest.NewRequest(http.MethodPost, "/sales", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestValidationMessage(t *testing.T) {
	type input struct {
		UUID  string `validate:"uuid"`
		OneOf string `validate:"oneof=a b c"`
	}

	v := validator.New()
	err := v.Struct(input{UUID: "nope", OneOf: "d"})
	require.Error(t, err)

	messages := map[string]string{}
	for _, e := range err.(validator.ValidationErrors) {
		messages[e.Field()] = validationMessage(e)
	}

	assert.Equal(t, "Invalid UUID format", messages["UUID"])
	assert.Equal(t, "Must be one of: a b c", messages["OneOf"])
}
