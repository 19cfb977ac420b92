package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Code    int    `json:"code,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// DataResponse is the legacy envelope the frontend expects from the
// /friends/* endpoints: a bare "data" array, empty on any failure.
type DataResponse struct {
	Data interface{} `json:"data"`
}

func SendError(c *gin.Context, status int, err string) {
	c.JSON(status, ErrorResponse{
		Error: err,
		Code:  status,
	})
}

func SendSuccess(c *gin.Context, message string, data interface{}) {
	response := SuccessResponse{
		Message: message,
	}
	if data != nil {
		response.Data = data
	}
	c.JSON(http.StatusOK, response)
}

func SendCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{
		Message: message,
		Data:    data,
	})
}

// SendData writes the legacy data envelope.
func SendData(c *gin.Context, data interface{}) {
	if data == nil {
		data = []interface{}{}
	}
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// SendEmptyData is the uniform "no-op" outcome of the legacy friend
// endpoints: success-shaped, nothing in it.
func SendEmptyData(c *gin.Context) {
	c.JSON(http.StatusOK, DataResponse{Data: []interface{}{}})
}
