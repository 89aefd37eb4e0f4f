package services

import (
	"testing"

	"github.com/campo22/food-delivery-app/entity"
	"github.com/stretchr/testify/assert"
)

func TestLineTotal(t *testing.T) {
	assert.Equal(t, int64(1000), LineTotal(2, 500))
	assert.Equal(t, int64(0), LineTotal(0, 500))
	assert.Equal(t, int64(300), LineTotal(1, 300))
}

func TestCartTotalSumsLines(t *testing.T) {
	items := []entity.CartItem{
		{LineTotal: 1000},
		{LineTotal: 300},
	}
	assert.Equal(t, int64(1300), CartTotal(items))
	assert.Equal(t, int64(0), CartTotal(nil))
}

func TestOrderTotalSumsLines(t *testing.T) {
	items := []entity.OrderItem{
		{LineTotal: 250},
		{LineTotal: 750},
		{LineTotal: 1},
	}
	assert.Equal(t, int64(1001), OrderTotal(items))
}
