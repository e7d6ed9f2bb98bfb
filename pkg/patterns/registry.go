// Package patterns assembles the full demo catalog in presentation order
package patterns

import (
	"github.com/patternplay/patternplay/pkg/catalog"
	"github.com/patternplay/patternplay/pkg/patterns/behavioral"
	"github.com/patternplay/patternplay/pkg/patterns/creational"
	"github.com/patternplay/patternplay/pkg/patterns/structural"
)

// All returns every demo in presentation order:
// Behavioral first, then Creational, then Structural.
func All() []catalog.Demo {
	return []catalog.Demo{
		// Behavioral
		behavioral.NewChainDemo(),
		behavioral.NewCommandDemo(),
		behavioral.NewInterpreterDemo(),
		behavioral.NewIteratorDemo(),
		behavioral.NewMediatorDemo(),
		behavioral.NewMementoDemo(),
		behavioral.NewObserverDemo(),
		behavioral.NewStateDemo(),
		behavioral.NewStrategyDemo(),
		behavioral.NewTemplateMethodDemo(),
		behavioral.NewVisitorDemo(),

		// Creational
		creational.NewAbstractFactoryDemo(),
		creational.NewBuilderDemo(),
		creational.NewFactoryMethodDemo(),
		creational.NewPrototypeDemo(),
		creational.NewSingletonDemo(),

		// Structural
		structural.NewAdapterDemo(),
		structural.NewBridgeDemo(),
		structural.NewCompositeDemo(),
		structural.NewDecoratorDemo(),
		structural.NewFacadeDemo(),
		structural.NewFlyweightDemo(),
		structural.NewProxyDemo(),
	}
}

// NewCatalog builds the catalog with every demo registered.
// A duplicate name is a programming error and surfaces as a registration error.
func NewCatalog() (*catalog.Catalog, error) {
	c := catalog.NewCatalog()
	for _, d := range All() {
		if err := c.Register(d); err != nil {
			return nil, err
		}
	}
	return c, nil
}
