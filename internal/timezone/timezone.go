package timezone

import "time"

const DefaultTimezone = "America/Argentina/Buenos_Aires"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		// imagem sem tzdata: Argentina não tem horário de verão
		return time.FixedZone("ART", -3*60*60)
	}
	return loc
}

// Clock devolve um relógio fixo no fuso da empresa
func Clock(tz string) func() time.Time {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
