package ir

import (
	"testing"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b *Node
		want bool
	}{
		{"nil vs nil", nil, nil, true},
		{"nil vs null", nil, Null(), false},
		{"null vs null", Null(), Null(), true},
		{"bool", FromBool(true), FromBool(true), true},
		{"bool mismatch", FromBool(true), FromBool(false), false},
		{"string", FromString("a"), FromString("a"), true},
		{"string vs number", FromString("1"), FromInt(1), false},
		{"int", FromInt(3), FromInt(3), true},
		{"int vs float same value", FromInt(3), FromFloat(3.0), true},
		{"int vs float different", FromInt(3), FromFloat(3.5), false},
		{"literal numbers", &Node{Type: NumberType, Number: "1e999"},
			&Node{Type: NumberType, Number: "1e999"}, true},
		{"array", FromSlice([]*Node{FromInt(1), FromInt(2)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}), true},
		{"array length", FromSlice([]*Node{FromInt(1)}),
			FromSlice([]*Node{FromInt(1), FromInt(2)}), false},
		{"object", FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}), true},
		{"object field order matters",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}, {Key: "b", Val: FromInt(2)}}),
			FromKeyVals([]KeyVal{{Key: "b", Val: FromInt(2)}, {Key: "a", Val: FromInt(1)}}),
			false},
		{"object value mismatch",
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(1)}}),
			FromKeyVals([]KeyVal{{Key: "a", Val: FromInt(2)}}),
			false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Equal(tt.a, tt.b); got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}
			if got := Equal(tt.b, tt.a); got != tt.want {
				t.Errorf("Equal() not symmetric")
			}
		})
	}
}
