package validation

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type examRequest struct {
	ExamID int64  `json:"exam_id" binding:"required"`
	Name   string `json:"name" binding:"required,notblank"`
}

func TestRegister(t *testing.T) {
	require.NoError(t, Register())
	require.NoError(t, Register())

	err := binding.Validator.ValidateStruct(&examRequest{Name: "   "})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 2)
	assert.Equal(t, "exam_id", verrs[0].Field())
	assert.Equal(t, "required", verrs[0].Tag())
	assert.Equal(t, "name", verrs[1].Field())
	assert.Equal(t, "notblank", verrs[1].Tag())

	assert.NoError(t, binding.Validator.ValidateStruct(&examRequest{ExamID: 1, Name: "SSC"}))
}
