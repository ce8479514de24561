// Package controller connects keypad and Enter events to the display buffer
// and the evaluator.
package controller

import (
	"fmt"

	"calc/eval"
	"calc/hal"
	"calc/view"
)

// Evaluator turns an expression into its result text or eval.ErrorMsg.
type Evaluator func(expression string) string

// View is the part of the window the controller drives.
type View interface {
	DisplayText() string
	SetDisplayText(text string)
	ClearDisplay()
	Buttons() []*view.Button
	OnReturnPressed(fn func())
}

type Controller struct {
	evaluate Evaluator
	view     View
	log      hal.Logger
}

// New wires model and view together. log may be nil; when set, every
// evaluation is traced.
func New(model Evaluator, v View, log hal.Logger) *Controller {
	c := &Controller{evaluate: model, view: v, log: log}
	c.connect()
	return c
}

func (c *Controller) connect() {
	for _, b := range c.view.Buttons() {
		switch b.Key() {
		case view.KeyEquals:
			b.OnClick(c.calculateResult)
		case view.KeyClear:
			b.OnClick(c.view.ClearDisplay)
		default:
			label := b.Label()
			b.OnClick(func() { c.buildExpression(label) })
		}
	}
	c.view.OnReturnPressed(c.calculateResult)
}

func (c *Controller) calculateResult() {
	expr := c.view.DisplayText()
	result := c.evaluate(expr)
	if c.log != nil {
		c.log.WriteLineString(fmt.Sprintf("calc: eval %q = %s", expr, result))
	}
	c.view.SetDisplayText(result)
}

func (c *Controller) buildExpression(sub string) {
	if c.view.DisplayText() == eval.ErrorMsg {
		c.view.ClearDisplay()
	}
	c.view.SetDisplayText(c.view.DisplayText() + sub)
}
