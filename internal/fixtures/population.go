package fixtures

import "australia-analytics/internal/domain"

// population holds yearly births, deaths, net overseas migration and estimated
// resident population for Australia. Totals are carried forward from 1982 by
// natural increase plus net migration.
var population = []domain.PopulationRecord{
	{Year: 1982, Births: 239903, Deaths: 114771, NetMigration: 118000, Total: 15184200},
	{Year: 1983, Births: 242570, Deaths: 110084, NetMigration: 71000, Total: 15387686},
	{Year: 1984, Births: 234034, Deaths: 109914, NetMigration: 49000, Total: 15560806},
	{Year: 1985, Births: 243408, Deaths: 121560, NetMigration: 73000, Total: 15755654},
	{Year: 1986, Births: 243410, Deaths: 114981, NetMigration: 100000, Total: 15984083},
	{Year: 1987, Births: 243959, Deaths: 116970, NetMigration: 125000, Total: 16236072},
	{Year: 1988, Births: 246193, Deaths: 119866, NetMigration: 172000, Total: 16534399},
	{Year: 1989, Births: 250853, Deaths: 124232, NetMigration: 157000, Total: 16818020},
	{Year: 1990, Births: 262648, Deaths: 120062, NetMigration: 124000, Total: 17084606},
	{Year: 1991, Births: 257247, Deaths: 119146, NetMigration: 87000, Total: 17309707},
	{Year: 1992, Births: 264151, Deaths: 123660, NetMigration: 68000, Total: 17518198},
	{Year: 1993, Births: 260229, Deaths: 121599, NetMigration: 30000, Total: 17686828},
	{Year: 1994, Births: 258051, Deaths: 126692, NetMigration: 47000, Total: 17865187},
	{Year: 1995, Births: 256190, Deaths: 125133, NetMigration: 80000, Total: 18076244},
	{Year: 1996, Births: 250400, Deaths: 128719, NetMigration: 104000, Total: 18301925},
	{Year: 1997, Births: 251842, Deaths: 129350, NetMigration: 87000, Total: 18511417},
	{Year: 1998, Births: 249616, Deaths: 127202, NetMigration: 80000, Total: 18713831},
	{Year: 1999, Births: 249870, Deaths: 128102, NetMigration: 96000, Total: 18931599},
	{Year: 2000, Births: 249636, Deaths: 128291, NetMigration: 107000, Total: 19159944},
	{Year: 2001, Births: 246394, Deaths: 128544, NetMigration: 135000, Total: 19412794},
	{Year: 2002, Births: 251021, Deaths: 133707, NetMigration: 110000, Total: 19640108},
	{Year: 2003, Births: 251161, Deaths: 132292, NetMigration: 116000, Total: 19874977},
	{Year: 2004, Births: 254246, Deaths: 132508, NetMigration: 100000, Total: 20096715},
	{Year: 2005, Births: 259791, Deaths: 130714, NetMigration: 123000, Total: 20348792},
	{Year: 2006, Births: 265949, Deaths: 133739, NetMigration: 146000, Total: 20627002},
	{Year: 2007, Births: 285213, Deaths: 137854, NetMigration: 232000, Total: 21006361},
	{Year: 2008, Births: 296621, Deaths: 143946, NetMigration: 277000, Total: 21436036},
	{Year: 2009, Births: 295738, Deaths: 140760, NetMigration: 299000, Total: 21890014},
	{Year: 2010, Births: 297903, Deaths: 143473, NetMigration: 196000, Total: 22240444},
	{Year: 2011, Births: 301617, Deaths: 146932, NetMigration: 180400, Total: 22575529},
	{Year: 2012, Births: 309582, Deaths: 147098, NetMigration: 231900, Total: 22969913},
	{Year: 2013, Births: 308065, Deaths: 147678, NetMigration: 227900, Total: 23358200},
	{Year: 2014, Births: 299697, Deaths: 153580, NetMigration: 185000, Total: 23689317},
	{Year: 2015, Births: 305377, Deaths: 159052, NetMigration: 171000, Total: 24006642},
	{Year: 2016, Births: 311104, Deaths: 158504, NetMigration: 183000, Total: 24342242},
	{Year: 2017, Births: 309142, Deaths: 160909, NetMigration: 263000, Total: 24753475},
	{Year: 2018, Births: 315147, Deaths: 158493, NetMigration: 238000, Total: 25148129},
	{Year: 2019, Births: 305832, Deaths: 169301, NetMigration: 241000, Total: 25525660},
	{Year: 2020, Births: 294369, Deaths: 161300, NetMigration: 42000, Total: 25700729},
	{Year: 2021, Births: 309996, Deaths: 171469, NetMigration: -38000, Total: 25801256},
	{Year: 2022, Births: 300684, Deaths: 190939, NetMigration: 387000, Total: 26298001},
	{Year: 2023, Births: 286998, Deaths: 182334, NetMigration: 536000, Total: 26938665},
	{Year: 2024, Births: 292318, Deaths: 183000, NetMigration: 380000, Total: 27427983},
}
