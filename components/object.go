package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the collision rectangle of an entity. Seq records the order
// in which objects were added to the space; collision scans resolve in that order.
type ObjectData struct {
	*resolv.Object
	Seq int
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()

// SpaceOrderData hands out ObjectData.Seq values for one world's space.
type SpaceOrderData struct {
	Next int
}

var SpaceOrder = donburi.NewComponentType[SpaceOrderData]()
