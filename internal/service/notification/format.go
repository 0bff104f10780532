package notification

import (
	"fmt"
	"math"
	"strings"

	"github.com/darkkaiser/ramprice-server/internal/pkg/currency"
	"github.com/darkkaiser/ramprice-server/internal/pkg/mark"
	"github.com/darkkaiser/ramprice-server/internal/service/contract"
	"github.com/darkkaiser/ramprice-server/pkg/strutil"
)

// formatPriceAlert 가격 변동 알림을 텔레그램 메시지 본문으로 변환합니다.
func formatPriceAlert(alert contract.PriceAlert) string {
	var sb strings.Builder

	switch alert.Kind {
	case contract.PriceAlertDrop:
		sb.WriteString("최저 시세 하락")
		sb.WriteString(mark.PriceDrop.WithSpace())
	case contract.PriceAlertRise:
		sb.WriteString("최저 시세 상승")
		sb.WriteString(mark.PriceRise.WithSpace())
	case contract.PriceAlertUnavailable:
		sb.WriteString("판매중인 판매처 없음")
		sb.WriteString(mark.Unavailable.WithSpace())
	}
	sb.WriteString("\n\n")

	if alert.ProductName != "" {
		sb.WriteString(alert.ProductName)
		sb.WriteString(" (")
		sb.WriteString(alert.ModelCode)
		sb.WriteString(")")
	} else {
		sb.WriteString(alert.ModelCode)
	}
	sb.WriteString("\n")

	if alert.Kind == contract.PriceAlertUnavailable {
		fmt.Fprintf(&sb, "마지막 확인 시세: %s %s", formatPrice(alert.PreviousBest), currency.Display)
		return sb.String()
	}

	fmt.Fprintf(&sb, "%s %s → %s %s",
		formatPrice(alert.PreviousBest), currency.Display,
		formatPrice(alert.CurrentBest), currency.Display)

	if alert.VendorName != "" {
		fmt.Fprintf(&sb, " (%s)", alert.VendorName)
	}

	return sb.String()
}

// formatPrice 가격을 천 단위 구분자가 있는 문자열로 변환합니다.
// 소수부가 없으면 정수 부분만 표시합니다. ("1,299", "7,276.36")
func formatPrice(v float64) string {
	v = math.Round(v*100) / 100

	whole := int64(v)
	frac := int(math.Round(math.Abs(v-float64(whole)) * 100))
	if frac == 0 {
		return strutil.FormatCommas(whole)
	}

	return fmt.Sprintf("%s.%02d", strutil.FormatCommas(whole), frac)
}
