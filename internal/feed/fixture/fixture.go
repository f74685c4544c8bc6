// Package fixture serves a static set of feed documents useful for local
// testing and bootstrapping without hitting the real upstream.
package fixture

import (
	"context"

	"f1-data-service/internal/feed"
)

// Client returns deterministic canned documents for every endpoint.
type Client struct{}

// New creates a fixture feed client.
func New() *Client {
	return &Client{}
}

func (c *Client) FetchDrivers(ctx context.Context, season string) (feed.RawDocument, error) {
	_ = ctx
	_ = season
	return feed.RawDocument(DriversXML), nil
}

func (c *Client) FetchRaceSchedule(ctx context.Context, season string) (feed.RawDocument, error) {
	_ = ctx
	_ = season
	return feed.RawDocument(ScheduleJSON), nil
}

func (c *Client) FetchRaceResults(ctx context.Context, season, round string) (feed.RawDocument, error) {
	_ = ctx
	_ = season
	_ = round
	// The live upstream serves results as JSON; the fixture matches.
	return feed.RawDocument(ResultsJSON), nil
}

func (c *Client) FetchConstructorStandings(ctx context.Context, season, round string) (feed.RawDocument, error) {
	_ = ctx
	_ = season
	_ = round
	return feed.RawDocument(StandingsXML), nil
}

// DriversXML is a trimmed season driver table covering the interesting
// shapes: an accented nationality, a missing permanent number, and the
// drivers with literal overrides.
const DriversXML = `<?xml version="1.0" encoding="utf-8"?>
<MRData series="f1" limit="30" offset="0" total="4">
  <DriverTable season="2024">
    <Driver driverId="albon" code="ALB" url="http://en.wikipedia.org/wiki/Alexander_Albon">
      <PermanentNumber>23</PermanentNumber>
      <GivenName>Alexander</GivenName>
      <FamilyName>Albon</FamilyName>
      <DateOfBirth>1996-03-23</DateOfBirth>
      <Nationality>Thai</Nationality>
    </Driver>
    <Driver driverId="leclerc" code="LEC" url="http://en.wikipedia.org/wiki/Charles_Leclerc">
      <PermanentNumber>16</PermanentNumber>
      <GivenName>Charles</GivenName>
      <FamilyName>Leclerc</FamilyName>
      <DateOfBirth>1997-10-16</DateOfBirth>
      <Nationality>Monégasque</Nationality>
    </Driver>
    <Driver driverId="max_verstappen" code="VER" url="http://en.wikipedia.org/wiki/Max_Verstappen">
      <PermanentNumber>33</PermanentNumber>
      <GivenName>Max</GivenName>
      <FamilyName>Verstappen</FamilyName>
      <DateOfBirth>1997-09-30</DateOfBirth>
      <Nationality>Dutch</Nationality>
    </Driver>
    <Driver driverId="doohan" code="DOO" url="http://en.wikipedia.org/wiki/Jack_Doohan">
      <GivenName>Jack</GivenName>
      <FamilyName>Doohan</FamilyName>
      <DateOfBirth>2003-01-20</DateOfBirth>
      <Nationality>Australian</Nationality>
    </Driver>
  </DriverTable>
</MRData>`

// ScheduleJSON is a trimmed season schedule in the JSON shape of the
// upstream, including the UK country spelling that needs the asset override.
const ScheduleJSON = `{
  "MRData": {
    "RaceTable": {
      "season": "2024",
      "Races": [
        {
          "season": "2024",
          "round": "1",
          "url": "https://en.wikipedia.org/wiki/2024_Bahrain_Grand_Prix",
          "raceName": "Bahrain Grand Prix",
          "Circuit": {
            "circuitId": "bahrain",
            "circuitRef": "BAH",
            "url": "https://en.wikipedia.org/wiki/Bahrain_International_Circuit",
            "circuitName": "Bahrain International Circuit",
            "Location": {
              "lat": "26.0325",
              "long": "50.5106",
              "locality": "Sakhir",
              "country": "Bahrain"
            }
          },
          "date": "2024-03-02",
          "time": "15:00:00Z"
        },
        {
          "season": "2024",
          "round": "12",
          "url": "https://en.wikipedia.org/wiki/2024_British_Grand_Prix",
          "raceName": "British Grand Prix",
          "Circuit": {
            "circuitId": "silverstone",
            "circuitRef": "SIL",
            "url": "https://en.wikipedia.org/wiki/Silverstone_Circuit",
            "circuitName": "Silverstone Circuit",
            "Location": {
              "lat": "52.0786",
              "long": "-1.01694",
              "locality": "Silverstone",
              "country": "UK"
            }
          },
          "date": "2024-07-07",
          "time": "14:00:00Z"
        },
        {
          "season": "2024",
          "round": "21",
          "url": "https://en.wikipedia.org/wiki/2024_Las_Vegas_Grand_Prix",
          "raceName": "Las Vegas Grand Prix",
          "Circuit": {
            "circuitId": "vegas",
            "circuitRef": "LVG",
            "url": "https://en.wikipedia.org/wiki/Las_Vegas_Strip_Circuit",
            "circuitName": "Las Vegas Strip Circuit",
            "Location": {
              "lat": "36.1147",
              "long": "-115.173",
              "locality": "Las Vegas",
              "country": "United States"
            }
          },
          "date": "2024-11-23",
          "time": "06:00:00Z"
        }
      ]
    }
  }
}`

// ResultsJSON is a trimmed race results document in the JSON shape of the
// upstream results endpoint: a winner with a fastest lap, a classified
// finisher without one, and a retirement with no position. ResultsXML below
// carries the same race in the markup shape.
const ResultsJSON = `{
  "MRData": {
    "RaceTable": {
      "season": "2024",
      "round": "1",
      "Races": [
        {
          "season": "2024",
          "round": "1",
          "url": "https://en.wikipedia.org/wiki/2024_Bahrain_Grand_Prix",
          "raceName": "Bahrain Grand Prix",
          "Circuit": {
            "circuitId": "bahrain",
            "url": "https://en.wikipedia.org/wiki/Bahrain_International_Circuit",
            "circuitName": "Bahrain International Circuit",
            "Location": {
              "lat": "26.0325",
              "long": "50.5106",
              "locality": "Sakhir",
              "country": "Bahrain"
            }
          },
          "date": "2024-03-02",
          "time": "15:00:00Z",
          "Results": [
            {
              "number": "1",
              "position": "1",
              "positionText": "1",
              "points": "26",
              "Driver": {
                "driverId": "max_verstappen",
                "permanentNumber": "33",
                "code": "VER",
                "url": "http://en.wikipedia.org/wiki/Max_Verstappen",
                "givenName": "Max",
                "familyName": "Verstappen",
                "dateOfBirth": "1997-09-30",
                "nationality": "Dutch"
              },
              "Constructor": {
                "constructorId": "red_bull",
                "url": "http://en.wikipedia.org/wiki/Red_Bull_Racing",
                "name": "Red Bull",
                "nationality": "Austrian"
              },
              "grid": "1",
              "laps": "57",
              "status": "Finished",
              "Time": {
                "millis": "5503589",
                "time": "1:31:43.589"
              },
              "FastestLap": {
                "rank": "1",
                "lap": "39",
                "Time": {
                  "time": "1:32.608"
                },
                "AverageSpeed": {
                  "units": "kph",
                  "speed": "210.383"
                }
              }
            },
            {
              "number": "16",
              "position": "2",
              "positionText": "2",
              "points": "18",
              "Driver": {
                "driverId": "leclerc",
                "permanentNumber": "16",
                "code": "LEC",
                "url": "http://en.wikipedia.org/wiki/Charles_Leclerc",
                "givenName": "Charles",
                "familyName": "Leclerc",
                "dateOfBirth": "1997-10-16",
                "nationality": "Monégasque"
              },
              "Constructor": {
                "constructorId": "ferrari",
                "url": "http://en.wikipedia.org/wiki/Scuderia_Ferrari",
                "name": "Ferrari",
                "nationality": "Italian"
              },
              "grid": "2",
              "laps": "57",
              "status": "Finished",
              "Time": {
                "millis": "5525975",
                "time": "+22.386"
              }
            },
            {
              "number": "23",
              "positionText": "R",
              "points": "0",
              "Driver": {
                "driverId": "albon",
                "permanentNumber": "23",
                "code": "ALB",
                "url": "http://en.wikipedia.org/wiki/Alexander_Albon",
                "givenName": "Alexander",
                "familyName": "Albon",
                "dateOfBirth": "1996-03-23",
                "nationality": "Thai"
              },
              "Constructor": {
                "constructorId": "williams",
                "url": "http://en.wikipedia.org/wiki/Williams_Grand_Prix_Engineering",
                "name": "Williams",
                "nationality": "British"
              },
              "grid": "13",
              "laps": "44",
              "status": "Brakes"
            }
          ]
        }
      ]
    }
  }
}`

// ResultsXML is the same trimmed race results document in the markup shape
// of the upstream standings and drivers endpoints.
const ResultsXML = `<?xml version="1.0" encoding="utf-8"?>
<MRData series="f1" limit="30" offset="0" total="3">
  <RaceTable season="2024" round="1">
    <Race season="2024" round="1" url="https://en.wikipedia.org/wiki/2024_Bahrain_Grand_Prix">
      <RaceName>Bahrain Grand Prix</RaceName>
      <Circuit circuitId="bahrain" url="https://en.wikipedia.org/wiki/Bahrain_International_Circuit">
        <CircuitName>Bahrain International Circuit</CircuitName>
        <Location lat="26.0325" long="50.5106">
          <Locality>Sakhir</Locality>
          <Country>Bahrain</Country>
        </Location>
      </Circuit>
      <Date>2024-03-02</Date>
      <Time>15:00:00Z</Time>
      <ResultsList>
        <Result number="1" position="1" positionText="1" points="26">
          <Driver driverId="max_verstappen" code="VER" url="http://en.wikipedia.org/wiki/Max_Verstappen">
            <PermanentNumber>33</PermanentNumber>
            <GivenName>Max</GivenName>
            <FamilyName>Verstappen</FamilyName>
            <DateOfBirth>1997-09-30</DateOfBirth>
            <Nationality>Dutch</Nationality>
          </Driver>
          <Constructor constructorId="red_bull" url="http://en.wikipedia.org/wiki/Red_Bull_Racing">
            <Name>Red Bull</Name>
            <Nationality>Austrian</Nationality>
          </Constructor>
          <Grid>1</Grid>
          <Laps>57</Laps>
          <Status statusId="1">Finished</Status>
          <Time millis="5503589">1:31:43.589</Time>
          <FastestLap rank="1" lap="39">
            <Time>1:32.608</Time>
            <AverageSpeed units="kph">210.383</AverageSpeed>
          </FastestLap>
        </Result>
        <Result number="16" position="2" positionText="2" points="18">
          <Driver driverId="leclerc" code="LEC" url="http://en.wikipedia.org/wiki/Charles_Leclerc">
            <PermanentNumber>16</PermanentNumber>
            <GivenName>Charles</GivenName>
            <FamilyName>Leclerc</FamilyName>
            <DateOfBirth>1997-10-16</DateOfBirth>
            <Nationality>Monégasque</Nationality>
          </Driver>
          <Constructor constructorId="ferrari" url="http://en.wikipedia.org/wiki/Scuderia_Ferrari">
            <Name>Ferrari</Name>
            <Nationality>Italian</Nationality>
          </Constructor>
          <Grid>2</Grid>
          <Laps>57</Laps>
          <Status statusId="1">Finished</Status>
          <Time millis="5525975">+22.386</Time>
        </Result>
        <Result number="23" positionText="R" points="0">
          <Driver driverId="albon" code="ALB" url="http://en.wikipedia.org/wiki/Alexander_Albon">
            <PermanentNumber>23</PermanentNumber>
            <GivenName>Alexander</GivenName>
            <FamilyName>Albon</FamilyName>
            <DateOfBirth>1996-03-23</DateOfBirth>
            <Nationality>Thai</Nationality>
          </Driver>
          <Constructor constructorId="williams" url="http://en.wikipedia.org/wiki/Williams_Grand_Prix_Engineering">
            <Name>Williams</Name>
            <Nationality>British</Nationality>
          </Constructor>
          <Grid>13</Grid>
          <Laps>44</Laps>
          <Status statusId="23">Brakes</Status>
        </Result>
      </ResultsList>
    </Race>
  </RaceTable>
</MRData>`

// StandingsXML is a trimmed constructor standings table, including the
// "sauber" id that needs the current-season remap.
const StandingsXML = `<?xml version="1.0" encoding="utf-8"?>
<MRData series="f1" limit="30" offset="0" total="3">
  <StandingsTable season="2024" round="24">
    <StandingsList season="2024" round="24">
      <ConstructorStanding position="1" positionText="1" points="666" wins="10">
        <Constructor constructorId="mclaren" url="http://en.wikipedia.org/wiki/McLaren">
          <Name>McLaren</Name>
          <Nationality>British</Nationality>
        </Constructor>
      </ConstructorStanding>
      <ConstructorStanding position="2" positionText="2" points="652" wins="5">
        <Constructor constructorId="ferrari" url="http://en.wikipedia.org/wiki/Scuderia_Ferrari">
          <Name>Ferrari</Name>
          <Nationality>Italian</Nationality>
        </Constructor>
      </ConstructorStanding>
      <ConstructorStanding position="10" positionText="10" points="4" wins="0">
        <Constructor constructorId="sauber" url="http://en.wikipedia.org/wiki/Sauber_Motorsport">
          <Name>Sauber</Name>
          <Nationality>Swiss</Nationality>
        </Constructor>
      </ConstructorStanding>
    </StandingsList>
  </StandingsTable>
</MRData>`
