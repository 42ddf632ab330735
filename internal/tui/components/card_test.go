package components

import (
	"strings"
	"testing"
)

func TestLayoutRow_SumsToTotal(t *testing.T) {
	tests := []struct {
		total, n int
	}{
		{100, 3},
		{100, 4},
		{81, 3},
		{7, 3},
	}
	for _, tt := range tests {
		widths := LayoutRow(tt.total, tt.n)
		if len(widths) != tt.n {
			t.Fatalf("LayoutRow(%d, %d) returned %d widths", tt.total, tt.n, len(widths))
		}
		sum := 0
		for _, w := range widths {
			sum += w
		}
		if sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
	}
}

func TestLayoutRow_ZeroItems(t *testing.T) {
	if widths := LayoutRow(100, 0); widths != nil {
		t.Errorf("LayoutRow(100, 0) = %v", widths)
	}
}

func TestMetricCard_ContainsContent(t *testing.T) {
	card := MetricCard("Total", "R$ 34.000,00", "-10% cupom", 30)

	if !strings.Contains(card, "Total") || !strings.Contains(card, "R$ 34.000,00") {
		t.Error("card should contain label and value")
	}
	if !strings.Contains(card, "-10% cupom") {
		t.Error("card should contain the note")
	}
}

func TestPane_ContainsTitleAndBody(t *testing.T) {
	pane := Pane("Agentes", "[x] Agente SDR", 40, true)

	if !strings.Contains(pane, "Agentes") || !strings.Contains(pane, "[x] Agente SDR") {
		t.Error("pane should contain title and body")
	}
}
