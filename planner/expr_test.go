package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"mit.edu/dsg/zero100/common"
	"mit.edu/dsg/zero100/storage"
)

func TestBasicEvaluation(t *testing.T) {
	schema := []common.Type{common.Int32Type, common.IntType}
	tup := storage.FromValues(common.NewInt32Value(7), common.NewNullInt())

	c := NewConstantValueExpression(common.NewIntValue(100))
	assert.Equal(t, int64(100), c.Eval(tup).IntValue())
	assert.Equal(t, common.IntType, c.OutputType())
	assert.Equal(t, "100", c.String())

	v := NewColumnValueExpression(0, schema, "v")
	assert.Equal(t, int32(7), v.Eval(tup).Int32Value())
	assert.Equal(t, common.Int32Type, v.OutputType())
	assert.Equal(t, 0, v.FieldOffset())
	assert.Equal(t, "v", v.String())

	n := NewColumnValueExpression(1, schema, "n")
	assert.True(t, n.Eval(tup).IsNull())
}
